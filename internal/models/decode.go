package models

import "fmt"

// The Decode* functions turn one decoded JSON object (as produced by
// encoding/json into map[string]any) into one record. They are strict: the
// first absent or mistyped key fails the whole call with a *FieldError and a
// zero record. Input maps are never modified.

// DecodeWeatherResponse decodes a complete j1 document.
func DecodeWeatherResponse(data map[string]any) (WeatherResponse, error) {
	r := newFieldReader("WeatherResponse", data)
	v := WeatherResponse{
		CurrentCondition: decodeList(r, "current_condition", DecodeCurrentCondition),
		NearestArea:      decodeList(r, "nearest_area", DecodeNearestArea),
		Request:          decodeList(r, "request", DecodeRequestEcho),
		Weather:          decodeList(r, "weather", DecodeDailyForecast),
	}
	return finish(v, r)
}

func DecodeCurrentCondition(data map[string]any) (CurrentCondition, error) {
	r := newFieldReader("CurrentCondition", data)
	v := CurrentCondition{
		FeelsLikeC:       r.str("FeelsLikeC"),
		FeelsLikeF:       r.str("FeelsLikeF"),
		CloudCover:       r.str("cloudcover"),
		Humidity:         r.str("humidity"),
		LocalObsDateTime: r.str("localObsDateTime"),
		ObservationTime:  r.str("observation_time"),
		PrecipInches:     r.str("precipInches"),
		PrecipMM:         r.str("precipMM"),
		Pressure:         r.str("pressure"),
		PressureInches:   r.str("pressureInches"),
		TempC:            r.str("temp_C"),
		TempF:            r.str("temp_F"),
		UVIndex:          r.str("uvIndex"),
		Visibility:       r.str("visibility"),
		VisibilityMiles:  r.str("visibilityMiles"),
		WeatherCode:      r.str("weatherCode"),
		WeatherDesc:      decodeList(r, "weatherDesc", DecodeDescription),
		WeatherIconURL:   decodeList(r, "weatherIconUrl", DecodeIconRef),
		WindDir16Point:   r.str("winddir16Point"),
		WindDirDegree:    r.str("winddirDegree"),
		WindSpeedKmph:    r.str("windspeedKmph"),
		WindSpeedMiles:   r.str("windspeedMiles"),
	}
	return finish(v, r)
}

func DecodeNearestArea(data map[string]any) (NearestArea, error) {
	r := newFieldReader("NearestArea", data)
	v := NearestArea{
		AreaName:   decodeList(r, "areaName", DecodeAreaName),
		Country:    decodeList(r, "country", DecodeCountry),
		Latitude:   r.str("latitude"),
		Longitude:  r.str("longitude"),
		Population: r.str("population"),
		Region:     decodeList(r, "region", DecodeRegion),
		WeatherURL: decodeList(r, "weatherUrl", DecodeDetailURL),
	}
	return finish(v, r)
}

func DecodeRequestEcho(data map[string]any) (RequestEcho, error) {
	r := newFieldReader("RequestEcho", data)
	v := RequestEcho{
		Query: r.str("query"),
		Type:  r.str("type"),
	}
	return finish(v, r)
}

func DecodeDailyForecast(data map[string]any) (DailyForecast, error) {
	r := newFieldReader("DailyForecast", data)
	v := DailyForecast{
		Astronomy:   decodeList(r, "astronomy", DecodeAstronomy),
		AvgTempC:    r.str("avgtempC"),
		AvgTempF:    r.str("avgtempF"),
		Date:        r.str("date"),
		Hourly:      decodeList(r, "hourly", DecodeHourlyWeather),
		MaxTempC:    r.str("maxtempC"),
		MaxTempF:    r.str("maxtempF"),
		MinTempC:    r.str("mintempC"),
		MinTempF:    r.str("mintempF"),
		SunHour:     r.str("sunHour"),
		TotalSnowCM: r.str("totalSnow_cm"),
		UVIndex:     r.str("uvIndex"),
	}
	return finish(v, r)
}

func DecodeHourlyWeather(data map[string]any) (HourlyWeather, error) {
	r := newFieldReader("HourlyWeather", data)
	v := HourlyWeather{
		DewPointC:        r.str("DewPointC"),
		DewPointF:        r.str("DewPointF"),
		FeelsLikeC:       r.str("FeelsLikeC"),
		FeelsLikeF:       r.str("FeelsLikeF"),
		HeatIndexC:       r.str("HeatIndexC"),
		HeatIndexF:       r.str("HeatIndexF"),
		WindChillC:       r.str("WindChillC"),
		WindChillF:       r.str("WindChillF"),
		WindGustKmph:     r.str("WindGustKmph"),
		WindGustMiles:    r.str("WindGustMiles"),
		ChanceOfFog:      r.str("chanceoffog"),
		ChanceOfFrost:    r.str("chanceoffrost"),
		ChanceOfHighTemp: r.str("chanceofhightemp"),
		ChanceOfOvercast: r.str("chanceofovercast"),
		ChanceOfRain:     r.str("chanceofrain"),
		ChanceOfRemDry:   r.str("chanceofremdry"),
		ChanceOfSnow:     r.str("chanceofsnow"),
		ChanceOfSunshine: r.str("chanceofsunshine"),
		ChanceOfThunder:  r.str("chanceofthunder"),
		ChanceOfWindy:    r.str("chanceofwindy"),
		CloudCover:       r.str("cloudcover"),
		DiffRad:          r.str("diffRad"),
		Humidity:         r.str("humidity"),
		PrecipInches:     r.str("precipInches"),
		PrecipMM:         r.str("precipMM"),
		Pressure:         r.str("pressure"),
		PressureInches:   r.str("pressureInches"),
		ShortRad:         r.str("shortRad"),
		TempC:            r.str("tempC"),
		TempF:            r.str("tempF"),
		Time:             r.str("time"),
		UVIndex:          r.str("uvIndex"),
		Visibility:       r.str("visibility"),
		VisibilityMiles:  r.str("visibilityMiles"),
		WeatherCode:      r.str("weatherCode"),
		WeatherDesc:      decodeList(r, "weatherDesc", DecodeDescription),
		WeatherIconURL:   decodeList(r, "weatherIconUrl", DecodeIconRef),
		WindDir16Point:   r.str("winddir16Point"),
		WindDirDegree:    r.str("winddirDegree"),
		WindSpeedKmph:    r.str("windspeedKmph"),
		WindSpeedMiles:   r.str("windspeedMiles"),
	}
	return finish(v, r)
}

func DecodeAstronomy(data map[string]any) (Astronomy, error) {
	r := newFieldReader("Astronomy", data)
	v := Astronomy{
		MoonIllumination: r.str("moon_illumination"),
		MoonPhase:        r.str("moon_phase"),
		Moonrise:         r.str("moonrise"),
		Moonset:          r.str("moonset"),
		Sunrise:          r.str("sunrise"),
		Sunset:           r.str("sunset"),
	}
	return finish(v, r)
}

func DecodeDescription(data map[string]any) (Description, error) {
	r := newFieldReader("Description", data)
	return finish(Description{Value: r.str("value")}, r)
}

func DecodeIconRef(data map[string]any) (IconRef, error) {
	r := newFieldReader("IconRef", data)
	return finish(IconRef{Value: r.str("value")}, r)
}

func DecodeAreaName(data map[string]any) (AreaName, error) {
	r := newFieldReader("AreaName", data)
	return finish(AreaName{Value: r.str("value")}, r)
}

func DecodeCountry(data map[string]any) (Country, error) {
	r := newFieldReader("Country", data)
	return finish(Country{Value: r.str("value")}, r)
}

func DecodeRegion(data map[string]any) (Region, error) {
	r := newFieldReader("Region", data)
	return finish(Region{Value: r.str("value")}, r)
}

func DecodeDetailURL(data map[string]any) (DetailURL, error) {
	r := newFieldReader("DetailURL", data)
	return finish(DetailURL{Value: r.str("value")}, r)
}

// fieldReader reads keys from one object and keeps the first error. Once it
// has failed every further read is a no-op, so a record literal can be built
// field by field and checked once.
type fieldReader struct {
	record string
	data   map[string]any
	err    error
}

func newFieldReader(record string, data map[string]any) *fieldReader {
	return &fieldReader{record: record, data: data}
}

func (r *fieldReader) lookup(key string) (any, bool) {
	if r.err != nil {
		return nil, false
	}
	v, ok := r.data[key]
	if !ok {
		r.err = &FieldError{Kind: ErrMissingField, Record: r.record, Field: key, Path: key}
		return nil, false
	}
	return v, true
}

func (r *fieldReader) str(key string) string {
	v, ok := r.lookup(key)
	if !ok {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		r.err = &FieldError{Kind: ErrFieldType, Record: r.record, Field: key, Path: key, Got: jsonType(v)}
		return ""
	}
	return s
}

// decodeList maps decode over the array at key, keeping input order.
func decodeList[T any](r *fieldReader, key string, decode func(map[string]any) (T, error)) []T {
	v, ok := r.lookup(key)
	if !ok {
		return nil
	}
	items, ok := v.([]any)
	if !ok {
		r.err = &FieldError{Kind: ErrFieldType, Record: r.record, Field: key, Path: key, Got: jsonType(v)}
		return nil
	}

	out := make([]T, 0, len(items))
	for i, item := range items {
		elem := fmt.Sprintf("%s[%d]", key, i)
		obj, ok := item.(map[string]any)
		if !ok {
			r.err = &FieldError{Kind: ErrFieldType, Record: r.record, Field: key, Path: elem, Got: jsonType(item)}
			return nil
		}
		rec, err := decode(obj)
		if err != nil {
			r.err = withPathPrefix(err, elem)
			return nil
		}
		out = append(out, rec)
	}
	return out
}

func finish[T any](v T, r *fieldReader) (T, error) {
	if r.err != nil {
		var zero T
		return zero, r.err
	}
	return v, nil
}
