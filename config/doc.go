// Package config handles application configuration loading and validation.
//
// Configuration is loaded from a YAML file and validated using struct tags.
// Every value has a default, so a file only states what it changes:
//
//	server:
//	  host: ""          # listen on all interfaces
//	  port: 8080
//	stations:
//	  source: stations.csv   # path or URL of the dataset
//	  delimiter: ";"
//	  encoding: utf8          # utf8 | latin1 | windows1252
//	  countries: [FR]         # [] keeps every country
//	  idPrefix: ""
//	matcher:
//	  cityThreshold: 0.6
//	  stationThreshold: 0.6
//	  searchThreshold: 0.5
//	  substringBonus: 0.2
//	cache:
//	  capacity: 4096
//	  ttlMinutes: 1440
package config
