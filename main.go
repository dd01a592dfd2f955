package main

import (
	"github.com/SundayYogurt/bank_service/config"
	"github.com/SundayYogurt/bank_service/internal/api"
)

func main() {
	cfg := config.LoadConfig()
	api.StartServer(cfg)
}
