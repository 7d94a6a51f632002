/*
Package tripdata loads bikeshare trip CSV files into memory and filters
them by month and weekday.

# Basic Usage

	reg := registry.Default("data")
	loader := tripdata.NewLoader(reg)
	table, err := loader.Load("chicago", "march", tripdata.All)

# Columns

Required columns are matched case-insensitively against the header:

  - Start Time
  - Start Station
  - End Station
  - Trip Duration
  - User Type

Gender and Birth Year are optional and city-dependent. Their presence is
detected from the header and reported in Table.Columns.

# Malformed rows

A row whose Start Time or Trip Duration cannot be parsed is skipped and
counted in Table.Skipped. With ReadOptions.Strict the first such row
aborts the load with a *MalformedRecordError instead. Unparseable birth
years are treated as missing.
*/
package tripdata
