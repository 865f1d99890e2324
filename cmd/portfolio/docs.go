package main

//go:generate swag init -g cmd/portfolio/docs.go -o docs

// @title           Portfolio API
// @version         0.1.0
// @description     Spreadsheet-backed holdings with derived allocation and performance analytics.
// @host            localhost:5000
// @BasePath        /
// @schemes         http
