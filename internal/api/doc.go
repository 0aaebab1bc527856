// Package api provides the Open-Meteo forecast API client.
//
// Endpoint: https://api.open-meteo.com/v1/forecast, serving both hourly
// forecasts (hourly=...) and instantaneous conditions (current=...).
//
// The hourly response shape depends on the request: a single-model request
// uses bare variable names (temperature_2m), a multi-model request suffixes
// every variable with the model name (temperature_2m_ecmwf_ifs). The
// adapter in convert.go handles both and validates units and array
// alignment before anything reaches the rendering pipeline.
package api
