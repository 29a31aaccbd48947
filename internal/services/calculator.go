package services

import (
	"go.uber.org/zap"
)

// Calculator implements the add and subtract tools. Overflow wraps as Go
// int arithmetic does.
type Calculator struct {
	logger *zap.Logger
}

func NewCalculator(logger *zap.Logger) *Calculator {
	return &Calculator{logger: logger}
}

func (c *Calculator) Add(a, b int) int {
	c.logger.Info("[add] Tool called", zap.Int("a", a), zap.Int("b", b))
	result := a + b
	c.logger.Debug("[add] Computed result", zap.Int("result", result))
	return result
}

func (c *Calculator) Subtract(a, b int) int {
	c.logger.Info("[subtract] Tool called", zap.Int("a", a), zap.Int("b", b))
	result := a - b
	c.logger.Debug("[subtract] Computed result", zap.Int("result", result))
	return result
}
