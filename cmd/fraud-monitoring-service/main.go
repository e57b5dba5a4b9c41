package main

import "fraud-monitoring-system/internal/bootstrap"

// @title Fraud Monitoring System API
// @version 1.0
// @description Сервис мониторинга мошеннических транзакций
// @host localhost:8080
// @BasePath /
func main() { bootstrap.StartService() }
