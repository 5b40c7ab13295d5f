package redis

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"
)

// HealthStatus is the outcome of a health check
type HealthStatus string

const (
	StatusUp      HealthStatus = "UP"
	StatusDown    HealthStatus = "DOWN"
	StatusUnknown HealthStatus = "UNKNOWN"
)

// RedisHealthCheck represents the health check response for Redis
type RedisHealthCheck struct {
	Status  HealthStatus      `json:"status"`
	Details map[string]string `json:"details"`
}

// HealthChecker provides Redis health checking functionality
type HealthChecker struct {
	client    *Client
	timeout   time.Duration
	mu        sync.Mutex
	lastCheck time.Time
	lastError string
	last      HealthStatus
}

// NewHealthChecker creates a new Redis health checker
func NewHealthChecker(client *Client) *HealthChecker {
	return &HealthChecker{
		client:  client,
		timeout: 2 * time.Second,
		last:    StatusUnknown,
	}
}

// HealthCheck pings Redis, runs a set/get/delete round trip and inspects the pool.
func (h *HealthChecker) HealthCheck() RedisHealthCheck {
	h.mu.Lock()
	defer h.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), h.timeout)
	defer cancel()

	pingResult := h.testPing(ctx)
	operationResult := pingResult && h.testBasicOperations(ctx)
	poolResult := pingResult && h.testConnectionPool()

	status := StatusDown
	if pingResult && operationResult && poolResult {
		status = StatusUp
		h.lastError = ""
	}
	h.last = status
	h.lastCheck = time.Now()

	config := h.client.GetConfig()
	return RedisHealthCheck{
		Status: status,
		Details: map[string]string{
			"address":               config.Addr(),
			"database":              strconv.Itoa(config.Database),
			"ping_successful":       strconv.FormatBool(pingResult),
			"operations_successful": strconv.FormatBool(operationResult),
			"pool_healthy":          strconv.FormatBool(poolResult),
			"last_check":            h.lastCheck.Format(time.RFC3339),
			"last_error":            h.lastError,
		},
	}
}

// LastStatus returns the status computed by the most recent HealthCheck.
func (h *HealthChecker) LastStatus() HealthStatus {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.last
}

// testPing tests basic connectivity to Redis
func (h *HealthChecker) testPing(ctx context.Context) bool {
	if err := h.client.Ping(ctx); err != nil {
		h.lastError = fmt.Sprintf("ping failed: %v", err)
		return false
	}
	return true
}

// testBasicOperations tests basic Redis operations
func (h *HealthChecker) testBasicOperations(ctx context.Context) bool {
	testKey := "health_check_test"
	testValue := "test_value"

	if err := h.client.Set(ctx, testKey, testValue, time.Minute); err != nil {
		h.lastError = fmt.Sprintf("set operation failed: %v", err)
		return false
	}

	value, err := h.client.GetBytes(ctx, testKey)
	if err != nil {
		h.lastError = fmt.Sprintf("get operation failed: %v", err)
		return false
	}
	if string(value) != testValue {
		h.lastError = fmt.Sprintf("value mismatch: expected %s, got %s", testValue, value)
		return false
	}

	if err := h.client.Delete(ctx, testKey); err != nil {
		h.lastError = fmt.Sprintf("delete operation failed: %v", err)
		return false
	}
	return true
}

// testConnectionPool tests the connection pool health
func (h *HealthChecker) testConnectionPool() bool {
	stats := h.client.Stats()
	if stats.TotalConns == 0 && stats.IdleConns == 0 {
		h.lastError = "connection pool is not accessible"
		return false
	}
	return true
}
