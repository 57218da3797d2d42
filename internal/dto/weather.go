package dto

type ForecastDay struct {
	Day       string `json:"day"`
	Condition string `json:"condition"`
	High      int    `json:"high"`
	Low       int    `json:"low"`
}

type WeatherResponse struct {
	Location    string        `json:"location"`
	Temperature int           `json:"temperature"`
	Condition   string        `json:"condition"`
	Humidity    int           `json:"humidity"`
	Wind        string        `json:"wind"`
	Forecast    []ForecastDay `json:"forecast"`
}
