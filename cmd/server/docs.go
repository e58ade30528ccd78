package main

//go:generate swag init -g cmd/server/main.go -o docs

// @title           Salesboard API
// @version         0.1.0
// @description     Sales trends, overview and performance report generation.
// @host            localhost:8080
// @BasePath        /
// @schemes         http
