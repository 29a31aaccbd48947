package services

import (
	"context"
	"fmt"
	"time"

	"github.com/bobby-s-dev/wttr-mcp/internal/models"
	"go.uber.org/zap"
)

type WeatherClient interface {
	URL(location string) string
	GetWeather(ctx context.Context, location string) (*models.WeatherResponse, error)
}

// FetchRecorder observes each provider fetch. A nil recorder is allowed.
type FetchRecorder interface {
	RecordFetch(duration time.Duration, err error)
}

// WeatherService implements the get_weather tool: one provider call per
// request, no caching.
type WeatherService struct {
	client   WeatherClient
	recorder FetchRecorder
	logger   *zap.Logger
}

func NewWeatherService(client WeatherClient, recorder FetchRecorder, logger *zap.Logger) *WeatherService {
	return &WeatherService{
		client:   client,
		recorder: recorder,
		logger:   logger,
	}
}

func (s *WeatherService) GetWeather(ctx context.Context, location string) (*models.WeatherResponse, error) {
	s.logger.Info("[get_weather] Fetching weather",
		zap.String("location", location),
		zap.String("url", s.client.URL(location)))

	start := time.Now()
	weather, err := s.client.GetWeather(ctx, location)
	if s.recorder != nil {
		s.recorder.RecordFetch(time.Since(start), err)
	}
	if err != nil {
		s.logger.Error("[get_weather] Failed to fetch weather",
			zap.String("location", location),
			zap.Duration("duration", time.Since(start)),
			zap.Error(err))
		return nil, fmt.Errorf("failed to fetch weather data: %w", err)
	}

	fields := []zap.Field{
		zap.String("location", location),
		zap.Int("days", len(weather.Weather)),
		zap.Duration("duration", time.Since(start)),
	}
	if len(weather.CurrentCondition) > 0 {
		fields = append(fields,
			zap.String("temp_C", weather.CurrentCondition[0].TempC),
			zap.String("description", weather.CurrentCondition[0].Description()))
	}
	if len(weather.NearestArea) > 0 {
		fields = append(fields, zap.String("area", weather.NearestArea[0].Name()))
	}
	s.logger.Debug("[get_weather] Received weather data", fields...)

	return weather, nil
}
