package db

import (
	"context"
	"testing"
	"time"
)

// TestNewRedisClient tests client initialization
func TestNewRedisClient(t *testing.T) {
	tests := []struct {
		name      string
		config    RedisConfig
		wantError bool
	}{
		{
			name: "default config",
			config: RedisConfig{
				Host: "localhost",
				Port: 6379,
			},
			wantError: false,
		},
		{
			name: "custom config with all fields",
			config: RedisConfig{
				Host:         "redis.example.com",
				Port:         6380,
				Password:     "secret",
				DB:           1,
				PoolSize:     20,
				MinIdleConns: 10,
				MaxRetries:   5,
				DialTimeout:  10 * time.Second,
				ReadTimeout:  5 * time.Second,
				WriteTimeout: 5 * time.Second,
			},
			wantError: false,
		},
		{
			name:      "empty config uses defaults",
			config:    RedisConfig{},
			wantError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewRedisClient(tt.config)

			if (err != nil) != tt.wantError {
				t.Errorf("NewRedisClient() error = %v, wantError %v", err, tt.wantError)
				return
			}

			if client == nil {
				t.Fatal("Expected non-nil client")
			}

			if client.client == nil {
				t.Error("Expected non-nil underlying Redis client")
			}

			// Verify defaults are applied
			if client.config.PoolSize == 0 {
				t.Error("Expected PoolSize to be set")
			}
			if client.config.MinIdleConns == 0 {
				t.Error("Expected MinIdleConns to be set")
			}
		})
	}
}

// TestDefaultRedisConfig tests default configuration
func TestDefaultRedisConfig(t *testing.T) {
	config := DefaultRedisConfig()

	if config.Host != "localhost" {
		t.Errorf("Expected default host 'localhost', got %s", config.Host)
	}
	if config.Port != 6379 {
		t.Errorf("Expected default port 6379, got %d", config.Port)
	}
	if config.PoolSize != 10 {
		t.Errorf("Expected default pool size 10, got %d", config.PoolSize)
	}
	if config.MinIdleConns != 5 {
		t.Errorf("Expected default min idle conns 5, got %d", config.MinIdleConns)
	}
	if config.MaxRetries != 3 {
		t.Errorf("Expected default max retries 3, got %d", config.MaxRetries)
	}
}

// TestRedisClient_Ping tests ping functionality
func TestRedisClient_Ping(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	client, err := NewRedisClient(DefaultRedisConfig())
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx); err != nil {
		t.Fatalf("Ping failed: %v", err)
	}
}

// TestRedisClient_SetGet tests basic set/get operations
func TestRedisClient_SetGet(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	client, err := NewRedisClient(DefaultRedisConfig())
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	testKey := "test:setget:key"
	testValue := "test-value-123"

	if err := client.Set(ctx, testKey, testValue, 10*time.Second); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	val, err := client.Get(ctx, testKey)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if val != testValue {
		t.Errorf("Expected value %s, got %s", testValue, val)
	}

	client.Del(ctx, testKey)
}

// TestRedisClient_Del tests delete operation
func TestRedisClient_Del(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	client, err := NewRedisClient(DefaultRedisConfig())
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	testKey := "test:del:key"
	client.Set(ctx, testKey, "value", 10*time.Second)

	if err := client.Del(ctx, testKey); err != nil {
		t.Fatalf("Del failed: %v", err)
	}

	if _, err := client.Get(ctx, testKey); err == nil {
		t.Error("Expected error when getting deleted key")
	}
}

// TestRedisClient_ScanKeys tests pattern matching via SCAN
func TestRedisClient_ScanKeys(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	client, err := NewRedisClient(DefaultRedisConfig())
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	testKeys := []string{
		"test:scankeys:doc1",
		"test:scankeys:doc2",
		"test:scankeys:doc3",
		"test:other:key",
	}
	for _, key := range testKeys {
		client.Set(ctx, key, "value", 10*time.Second)
		defer client.Del(ctx, key)
	}

	keys, err := client.ScanKeys(ctx, "test:scankeys:*")
	if err != nil {
		t.Fatalf("ScanKeys failed: %v", err)
	}
	if len(keys) != 3 {
		t.Errorf("Expected 3 matching keys, got %d", len(keys))
	}
}

// TestRedisClient_Close tests client cleanup
func TestRedisClient_Close(t *testing.T) {
	client, err := NewRedisClient(DefaultRedisConfig())
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}

	if err := client.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}
}

// TestRedisClient_ContextCancellation tests context cancellation handling
func TestRedisClient_ContextCancellation(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	client, err := NewRedisClient(DefaultRedisConfig())
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}
	defer client.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // Cancel immediately

	if err := client.Set(ctx, "test:key", "value", 0); err == nil {
		t.Error("Expected error with cancelled context")
	}
}
