package main

import (
	"fmt"

	"github.com/katiamach/weather-dashboard-api/internal/api"
	"github.com/katiamach/weather-dashboard-api/internal/logger"
)

func main() {
	err := api.RunAPI()
	if err != nil {
		logger.Fatal(fmt.Errorf("failed to run weather dashboard api: %v", err))
	}
}
