// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml and validated using struct tags.
// When no file is found the stock three-city registry is used, so the tool
// runs out of the box next to the CSV files.
package config
