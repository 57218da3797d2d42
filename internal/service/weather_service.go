package service

import (
	"agridash/internal/dto"
	"agridash/internal/models"

	"go.uber.org/zap"
)

type weatherEntry struct {
	temperature int
	condition   string
	humidity    int
	wind        string
}

var staticWeather = map[string]weatherEntry{
	"Delhi":     {28, "Sunny with haze", 65, "5 km/h"},
	"Pune":      {24, "Partly Cloudy", 70, "10 km/h"},
	"Shimla":    {15, "Cloudy, chance of rain", 60, "8 km/h"},
	"Bangalore": {26, "Clear skies", 68, "7 km/h"},
	"Mumbai":    {30, "Humid and Overcast", 80, "12 km/h"},
	"Hyderabad": {27, "Light Rain", 75, "8 km/h"},
}

var staticForecast = []dto.ForecastDay{
	{Day: "Tomorrow", Condition: "Sunny", High: 29, Low: 20},
	{Day: "Day 3", Condition: "Partly Cloudy", High: 27, Low: 18},
	{Day: "Day 4", Condition: "Light Rain", High: 25, Low: 17},
}

// WeatherService serves fixed conditions per city. Unknown locations get Delhi.
type WeatherService struct {
	logger *zap.Logger
}

func NewWeatherService(logger *zap.Logger) *WeatherService {
	return &WeatherService{logger: logger}
}

func (s *WeatherService) ForLocation(location string) dto.WeatherResponse {
	name := titleCase(location)
	entry, ok := staticWeather[name]
	if !ok {
		s.logger.Debug("No weather for location, using default", zap.String("location", location))
		name = models.DefaultLocation
		entry = staticWeather[name]
	}

	return dto.WeatherResponse{
		Location:    name,
		Temperature: entry.temperature,
		Condition:   entry.condition,
		Humidity:    entry.humidity,
		Wind:        entry.wind,
		Forecast:    append([]dto.ForecastDay(nil), staticForecast...),
	}
}
