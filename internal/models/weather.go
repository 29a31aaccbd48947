// Package models holds the typed view of a wttr.in "format=j1" document and
// the strict decoders that build it from decoded JSON.
//
// Every scalar is kept as the text the provider sent. Numeric-looking values
// are not parsed: the provider does not guarantee their formatting.
package models

// WeatherResponse is the root of a j1 document. The provider normally sends
// exactly one current condition, nearest area and request echo, but any count
// is accepted.
type WeatherResponse struct {
	CurrentCondition []CurrentCondition `json:"current_condition"`
	NearestArea      []NearestArea      `json:"nearest_area"`
	Request          []RequestEcho      `json:"request"`
	Weather          []DailyForecast    `json:"weather"`
}

// CurrentCondition is the latest observation at the queried location.
type CurrentCondition struct {
	FeelsLikeC       string        `json:"FeelsLikeC"`
	FeelsLikeF       string        `json:"FeelsLikeF"`
	CloudCover       string        `json:"cloudcover"`
	Humidity         string        `json:"humidity"`
	LocalObsDateTime string        `json:"localObsDateTime"`
	ObservationTime  string        `json:"observation_time"`
	PrecipInches     string        `json:"precipInches"`
	PrecipMM         string        `json:"precipMM"`
	Pressure         string        `json:"pressure"`
	PressureInches   string        `json:"pressureInches"`
	TempC            string        `json:"temp_C"`
	TempF            string        `json:"temp_F"`
	UVIndex          string        `json:"uvIndex"`
	Visibility       string        `json:"visibility"`
	VisibilityMiles  string        `json:"visibilityMiles"`
	WeatherCode      string        `json:"weatherCode"`
	WeatherDesc      []Description `json:"weatherDesc"`
	WeatherIconURL   []IconRef     `json:"weatherIconUrl"`
	WindDir16Point   string        `json:"winddir16Point"`
	WindDirDegree    string        `json:"winddirDegree"`
	WindSpeedKmph    string        `json:"windspeedKmph"`
	WindSpeedMiles   string        `json:"windspeedMiles"`
}

// Description returns the first weather description, or "" if there is none.
func (c CurrentCondition) Description() string {
	if len(c.WeatherDesc) == 0 {
		return ""
	}
	return c.WeatherDesc[0].Value
}

// NearestArea describes the place the provider resolved the query to.
type NearestArea struct {
	AreaName   []AreaName  `json:"areaName"`
	Country    []Country   `json:"country"`
	Latitude   string      `json:"latitude"`
	Longitude  string      `json:"longitude"`
	Population string      `json:"population"`
	Region     []Region    `json:"region"`
	WeatherURL []DetailURL `json:"weatherUrl"`
}

// Name returns the first area name, or "" if there is none.
func (a NearestArea) Name() string {
	if len(a.AreaName) == 0 {
		return ""
	}
	return a.AreaName[0].Value
}

// RequestEcho is what the provider believes it was asked.
type RequestEcho struct {
	Query string `json:"query"`
	Type  string `json:"type"`
}

// DailyForecast aggregates one forecast day.
type DailyForecast struct {
	Astronomy   []Astronomy     `json:"astronomy"`
	AvgTempC    string          `json:"avgtempC"`
	AvgTempF    string          `json:"avgtempF"`
	Date        string          `json:"date"`
	Hourly      []HourlyWeather `json:"hourly"`
	MaxTempC    string          `json:"maxtempC"`
	MaxTempF    string          `json:"maxtempF"`
	MinTempC    string          `json:"mintempC"`
	MinTempF    string          `json:"mintempF"`
	SunHour     string          `json:"sunHour"`
	TotalSnowCM string          `json:"totalSnow_cm"`
	UVIndex     string          `json:"uvIndex"`
}

// HourlyWeather is one 3-hour forecast slot. Time is HHMM without padding
// ("0", "300", ... "2100").
type HourlyWeather struct {
	DewPointC        string        `json:"DewPointC"`
	DewPointF        string        `json:"DewPointF"`
	FeelsLikeC       string        `json:"FeelsLikeC"`
	FeelsLikeF       string        `json:"FeelsLikeF"`
	HeatIndexC       string        `json:"HeatIndexC"`
	HeatIndexF       string        `json:"HeatIndexF"`
	WindChillC       string        `json:"WindChillC"`
	WindChillF       string        `json:"WindChillF"`
	WindGustKmph     string        `json:"WindGustKmph"`
	WindGustMiles    string        `json:"WindGustMiles"`
	ChanceOfFog      string        `json:"chanceoffog"`
	ChanceOfFrost    string        `json:"chanceoffrost"`
	ChanceOfHighTemp string        `json:"chanceofhightemp"`
	ChanceOfOvercast string        `json:"chanceofovercast"`
	ChanceOfRain     string        `json:"chanceofrain"`
	ChanceOfRemDry   string        `json:"chanceofremdry"`
	ChanceOfSnow     string        `json:"chanceofsnow"`
	ChanceOfSunshine string        `json:"chanceofsunshine"`
	ChanceOfThunder  string        `json:"chanceofthunder"`
	ChanceOfWindy    string        `json:"chanceofwindy"`
	CloudCover       string        `json:"cloudcover"`
	DiffRad          string        `json:"diffRad"`
	Humidity         string        `json:"humidity"`
	PrecipInches     string        `json:"precipInches"`
	PrecipMM         string        `json:"precipMM"`
	Pressure         string        `json:"pressure"`
	PressureInches   string        `json:"pressureInches"`
	ShortRad         string        `json:"shortRad"`
	TempC            string        `json:"tempC"`
	TempF            string        `json:"tempF"`
	Time             string        `json:"time"`
	UVIndex          string        `json:"uvIndex"`
	Visibility       string        `json:"visibility"`
	VisibilityMiles  string        `json:"visibilityMiles"`
	WeatherCode      string        `json:"weatherCode"`
	WeatherDesc      []Description `json:"weatherDesc"`
	WeatherIconURL   []IconRef     `json:"weatherIconUrl"`
	WindDir16Point   string        `json:"winddir16Point"`
	WindDirDegree    string        `json:"winddirDegree"`
	WindSpeedKmph    string        `json:"windspeedKmph"`
	WindSpeedMiles   string        `json:"windspeedMiles"`
}

// Astronomy holds sun and moon times for a day, in the location's local time.
type Astronomy struct {
	MoonIllumination string `json:"moon_illumination"`
	MoonPhase        string `json:"moon_phase"`
	Moonrise         string `json:"moonrise"`
	Moonset          string `json:"moonset"`
	Sunrise          string `json:"sunrise"`
	Sunset           string `json:"sunset"`
}

// The provider wraps every free-text string in a one-element list of
// {"value": ...} objects. The wrappers below mirror that shape.

type Description struct {
	Value string `json:"value"`
}

type IconRef struct {
	Value string `json:"value"`
}

type AreaName struct {
	Value string `json:"value"`
}

type Country struct {
	Value string `json:"value"`
}

type Region struct {
	Value string `json:"value"`
}

type DetailURL struct {
	Value string `json:"value"`
}
