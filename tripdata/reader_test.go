package tripdata

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `,Start Time,End Time,Trip Duration,Start Station,End Station,User Type,Gender,Birth Year
1,2017-03-06 08:15:00,2017-03-06 08:25:00,600,Canal St,Clark St,Subscriber,Female,1990.0
2,2017-03-06 17:20:00,,420,State St,Canal St,,,
3,bad time,,900,Canal St,State St,Subscriber,Male,1985.0
4,2017-03-11 12:00:00,,-5,Lake Shore Dr,Lake Shore Dr,Customer,Female,2000.0
`

func TestReadTable_ParsesAndDerives(t *testing.T) {
	table, err := ReadTable(strings.NewReader(sampleCSV), DefaultReadOptions())
	require.NoError(t, err)

	require.Equal(t, 2, table.Len())
	assert.Equal(t, 2, table.Skipped)
	assert.True(t, table.Columns.Gender)
	assert.True(t, table.Columns.BirthYear)

	first := table.Trips[0]
	assert.Equal(t, time.Date(2017, 3, 6, 8, 15, 0, 0, time.UTC), first.StartTime)
	assert.Equal(t, time.Date(2017, 3, 6, 8, 25, 0, 0, time.UTC), first.EndTime)
	assert.Equal(t, 3, first.Month)
	assert.Equal(t, "Monday", first.DayOfWeek)
	assert.Equal(t, 8, first.Hour)
	assert.Equal(t, "Canal St", first.StartStation)
	assert.Equal(t, "Clark St", first.EndStation)
	assert.Equal(t, 600.0, first.DurationSeconds)
	assert.Equal(t, Demographics{Gender: "Female", HasGender: true, BirthYear: 1990, HasBirthYear: true}, first.Demographics)

	second := table.Trips[1]
	assert.True(t, second.EndTime.IsZero())
	assert.Equal(t, UnknownUserType, second.UserType)
	assert.False(t, second.Demographics.HasGender)
	assert.False(t, second.Demographics.HasBirthYear)
	assert.Equal(t, 17, second.Hour)
}

func TestReadTable_StrictMalformedRecord(t *testing.T) {
	opts := DefaultReadOptions()
	opts.Strict = true

	_, err := ReadTable(strings.NewReader(sampleCSV), opts)
	var malformed *MalformedRecordError
	require.True(t, errors.As(err, &malformed))
	assert.Equal(t, 4, malformed.Line)
	assert.Equal(t, "Start Time", malformed.Column)
	assert.Equal(t, "bad time", malformed.Value)
}

func TestReadTable_WithoutDemographicColumns(t *testing.T) {
	data := `Start Time,Trip Duration,Start Station,End Station,User Type
2017-04-03 09:00:00,1103.234,Lincoln Memorial,Jefferson Dr,Registered
`
	table, err := ReadTable(strings.NewReader(data), DefaultReadOptions())
	require.NoError(t, err)
	require.Equal(t, 1, table.Len())
	assert.Equal(t, Columns{}, table.Columns)
	assert.InDelta(t, 1103.234, table.Trips[0].DurationSeconds, 1e-9)
}

func TestReadTable_HeaderIsCaseInsensitive(t *testing.T) {
	data := "\ufeffstart time,TRIP DURATION,start station,end station,user type\n2017-01-01 00:07:57,60,A,B,Customer\n"
	table, err := ReadTable(strings.NewReader(data), DefaultReadOptions())
	require.NoError(t, err)
	assert.Equal(t, 1, table.Len())
}

func TestReadTable_MissingColumns(t *testing.T) {
	_, err := ReadTable(strings.NewReader("Start Time,Start Station\n"), DefaultReadOptions())
	var missing *MissingColumnError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, []string{"End Station", "Trip Duration", "User Type"}, missing.Columns)

	_, err = ReadTable(strings.NewReader(""), DefaultReadOptions())
	require.True(t, errors.As(err, &missing))
	assert.Len(t, missing.Columns, 5)
}

func TestReadTable_CustomLayout(t *testing.T) {
	data := "Start Time,Trip Duration,Start Station,End Station,User Type\n03/06/2017 08:15,60,A,B,Customer\n"
	table, err := ReadTable(strings.NewReader(data), ReadOptions{TimeLayouts: []string{"01/02/2006 15:04"}})
	require.NoError(t, err)
	require.Equal(t, 1, table.Len())
	assert.Equal(t, 3, table.Trips[0].Month)
}

func TestReadTable_ShortRowIsMalformed(t *testing.T) {
	data := "Start Time,Trip Duration,Start Station,End Station,User Type\n2017-01-01 00:07:57\n"
	table, err := ReadTable(strings.NewReader(data), DefaultReadOptions())
	require.NoError(t, err)
	assert.Equal(t, 0, table.Len())
	assert.Equal(t, 1, table.Skipped)
}
