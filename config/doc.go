// Package config provides configuration loading and validation for restkit
// applications.
//
// It uses Viper to load configuration from YAML files and environment
// variables, with .env support via godotenv. Services embed ServiceConfig in
// their own config structs to inherit defaults, validation, and logging
// configuration.
package config
