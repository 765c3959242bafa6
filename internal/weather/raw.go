package weather

// RawResponse mirrors the OpenWeather current-weather payload. It is
// returned by the provider client untouched; the normalizer is the only
// place that interprets it. Sections and required scalars are pointers so
// an absent field can be told apart from a zero value.
type RawResponse struct {
	Name    string         `json:"name"`
	Weather []RawCondition `json:"weather"`
	Main    *RawMain       `json:"main"`
	Wind    *RawWind       `json:"wind"`
	Rain    *RawRain       `json:"rain"`
	Clouds  *RawClouds     `json:"clouds"`
	Sys     *RawSys        `json:"sys"`

	Visibility *int  `json:"visibility"`
	Dt         int64 `json:"dt"`
}

// RawCondition is one entry of the weather-description list.
type RawCondition struct {
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// RawMain is the current-conditions section.
type RawMain struct {
	Temp      *float64 `json:"temp"`
	FeelsLike *float64 `json:"feels_like"`
	TempMin   *float64 `json:"temp_min"`
	TempMax   *float64 `json:"temp_max"`
	Humidity  *float64 `json:"humidity"`
	Pressure  *int     `json:"pressure"`
	SeaLevel  *int     `json:"sea_level"`
	GrndLevel *int     `json:"grnd_level"`
}

type RawWind struct {
	Speed *float64 `json:"speed"`
	Deg   *int     `json:"deg"`
	Gust  *float64 `json:"gust"`
}

type RawRain struct {
	OneH   *float64 `json:"1h"`
	ThreeH *float64 `json:"3h"`
}

type RawClouds struct {
	All *int `json:"all"`
}

type RawSys struct {
	Country string `json:"country"`
	Sunrise *int64 `json:"sunrise"`
	Sunset  *int64 `json:"sunset"`
}

// RawForecast mirrors the OpenWeather 5-day/3-hour forecast payload.
type RawForecast struct {
	List []RawForecastItem `json:"list"`
}

type RawForecastItem struct {
	DtTxt   string         `json:"dt_txt"`
	Main    *RawMain       `json:"main"`
	Wind    *RawWind       `json:"wind"`
	Clouds  *RawClouds     `json:"clouds"`
	Weather []RawCondition `json:"weather"`
}
