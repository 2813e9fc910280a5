package llm

import (
	"os"
	"strconv"
)

// TaskType identifies the kind of LLM task being performed.
type TaskType string

const (
	// TaskItemDraft turns a short goal description into a set of candidate
	// schedulable items.
	TaskItemDraft TaskType = "item_draft"
	// TaskGoalDecomposition breaks a high-level goal into sub-items with
	// suggested durations and deadlines.
	TaskGoalDecomposition TaskType = "goal_decomposition"
	// TaskScheduleExplain produces a human-readable rationale for why a
	// schedule was shaped the way it was.
	TaskScheduleExplain TaskType = "schedule_explain"
)

// TaskConfig holds per-task LLM parameters.
type TaskConfig struct {
	Temperature float64
	MaxTokens   int
	TimeoutMs   int // overrides global if > 0
}

// Config holds all configuration for the LLM subsystem.
type Config struct {
	Enabled             bool
	LogCalls            bool
	Endpoint            string
	Model               string
	TimeoutMs           int
	MaxRetries          int
	ConfidenceThreshold float64
	Tasks               map[TaskType]TaskConfig
}

// DefaultConfig returns a Config with sensible defaults. LLM features are
// disabled by default; generate_schedule never depends on them.
func DefaultConfig() Config {
	return Config{
		Enabled:             false,
		LogCalls:            false,
		Endpoint:            "http://localhost:11434",
		Model:               "llama3.2",
		TimeoutMs:           10000,
		MaxRetries:          1,
		ConfidenceThreshold: 0.85,
		Tasks: map[TaskType]TaskConfig{
			TaskItemDraft:         {Temperature: 0.2, MaxTokens: 1024, TimeoutMs: 8000},
			TaskGoalDecomposition: {Temperature: 0.3, MaxTokens: 2048, TimeoutMs: 15000},
			TaskScheduleExplain:   {Temperature: 0.3, MaxTokens: 1024, TimeoutMs: 6000},
		},
	}
}

// LoadConfig reads LLM configuration from environment variables, falling
// back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("DAYWISE_LLM_ENABLED"); v != "" {
		cfg.Enabled, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("DAYWISE_LLM_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("DAYWISE_LLM_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("DAYWISE_LLM_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("DAYWISE_LLM_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("DAYWISE_LLM_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}
	if v := os.Getenv("DAYWISE_LLM_CONFIDENCE_THRESHOLD"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 && f <= 1 {
			cfg.ConfidenceThreshold = f
		}
	}

	applyTaskTimeoutEnv(&cfg, TaskItemDraft, "DAYWISE_LLM_ITEM_DRAFT_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskGoalDecomposition, "DAYWISE_LLM_GOAL_DECOMPOSITION_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskScheduleExplain, "DAYWISE_LLM_SCHEDULE_EXPLAIN_TIMEOUT_MS")

	return cfg
}

// TaskTimeout returns the effective timeout for a given task type. Uses the
// task-specific timeout if set, otherwise the global timeout.
func (c Config) TaskTimeout(task TaskType) int {
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		return tc.TimeoutMs
	}
	return c.TimeoutMs
}

func applyTaskTimeoutEnv(cfg *Config, task TaskType, envName string) {
	v := os.Getenv(envName)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return
	}
	tc := cfg.Tasks[task]
	tc.TimeoutMs = n
	cfg.Tasks[task] = tc
}
