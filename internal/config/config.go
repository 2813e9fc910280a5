package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/corvidae/daywise/internal/domain"
	"gopkg.in/yaml.v3"
)

// SchedulerProfile is the on-disk configuration shape: the scheduler's
// Configuration struct plus the ambient fields a real deployment needs
// (storage location, LLM toggles, logging).
type SchedulerProfile struct {
	DayStartHour          float64 `yaml:"day_start_hour"`
	DayEndHour            float64 `yaml:"day_end_hour"`
	FamilyTimeStartHour   float64 `yaml:"family_time_start_hour"`
	DeepWorkStartHour     float64 `yaml:"deep_work_start_hour"`
	DeepWorkEndHour       float64 `yaml:"deep_work_end_hour"`
	ShallowStartHour      float64 `yaml:"shallow_start_hour"`
	ShallowEndHour        float64 `yaml:"shallow_end_hour"`
	PlanningHorizonDays   int     `yaml:"planning_horizon_days"`
	MaxItemsPerGoalPerDay int     `yaml:"max_items_per_goal_per_day"`
	FridayCloseHour       float64 `yaml:"friday_close_hour"`

	StorageDSN   string `yaml:"storage_dsn"`
	StorageKind  string `yaml:"storage_kind"` // "sqlite" or "postgres"
	LLMEnabled   bool   `yaml:"llm_enabled"`
	LogFilePath  string `yaml:"log_file_path"`
	LogDebugMode bool   `yaml:"log_debug_mode"`
}

// DefaultProfile returns a profile seeded from domain.DefaultConfig plus
// sensible ambient defaults.
func DefaultProfile() SchedulerProfile {
	core := domain.DefaultConfig()
	return SchedulerProfile{
		DayStartHour:          core.DayStartHour,
		DayEndHour:            core.DayEndHour,
		FamilyTimeStartHour:   core.FamilyTimeStartHour,
		DeepWorkStartHour:     core.DeepWorkStartHour,
		DeepWorkEndHour:       core.DeepWorkEndHour,
		ShallowStartHour:      core.ShallowStartHour,
		ShallowEndHour:        core.ShallowEndHour,
		PlanningHorizonDays:   core.PlanningHorizonDays,
		MaxItemsPerGoalPerDay: core.MaxItemsPerGoalPerDay,
		FridayCloseHour:       core.FridayCloseHour,
		StorageKind:           "sqlite",
		StorageDSN:            "daywise.db",
		LogFilePath:           "daywise.log",
	}
}

// SchedulerConfig projects the profile down to the plain domain.Config the
// core's generate_schedule accepts.
func (p SchedulerProfile) SchedulerConfig() domain.Config {
	return domain.Config{
		DayStartHour:          p.DayStartHour,
		DayEndHour:            p.DayEndHour,
		FamilyTimeStartHour:   p.FamilyTimeStartHour,
		DeepWorkStartHour:     p.DeepWorkStartHour,
		DeepWorkEndHour:       p.DeepWorkEndHour,
		ShallowStartHour:      p.ShallowStartHour,
		ShallowEndHour:        p.ShallowEndHour,
		PlanningHorizonDays:   p.PlanningHorizonDays,
		MaxItemsPerGoalPerDay: p.MaxItemsPerGoalPerDay,
		FridayCloseHour:       p.FridayCloseHour,
	}
}

// LoadProfile reads path as YAML over top of DefaultProfile, then applies
// environment-variable overrides (DAYWISE_* names), following
// internal/llm/config.go's LoadConfig/applyTaskTimeoutEnv pattern. A
// missing file is not an error: the defaults stand and only env overrides
// apply.
func LoadProfile(path string) (SchedulerProfile, error) {
	profile := DefaultProfile()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return profile, fmt.Errorf("reading profile %s: %w", path, err)
			}
		} else if err := yaml.Unmarshal(data, &profile); err != nil {
			return profile, fmt.Errorf("parsing profile %s: %w", path, err)
		}
	}

	applyFloatEnv(&profile.DayStartHour, "DAYWISE_DAY_START_HOUR")
	applyFloatEnv(&profile.DayEndHour, "DAYWISE_DAY_END_HOUR")
	applyFloatEnv(&profile.FamilyTimeStartHour, "DAYWISE_FAMILY_TIME_START_HOUR")
	applyFloatEnv(&profile.DeepWorkStartHour, "DAYWISE_DEEP_WORK_START_HOUR")
	applyFloatEnv(&profile.DeepWorkEndHour, "DAYWISE_DEEP_WORK_END_HOUR")
	applyIntEnv(&profile.PlanningHorizonDays, "DAYWISE_HORIZON_DAYS")
	applyIntEnv(&profile.MaxItemsPerGoalPerDay, "DAYWISE_MAX_ITEMS_PER_GOAL_PER_DAY")

	if v := os.Getenv("DAYWISE_STORAGE_DSN"); v != "" {
		profile.StorageDSN = v
	}
	if v := os.Getenv("DAYWISE_STORAGE_KIND"); v != "" {
		profile.StorageKind = v
	}
	if v := os.Getenv("DAYWISE_LLM_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			profile.LLMEnabled = b
		}
	}
	if v := os.Getenv("DAYWISE_LOG_FILE_PATH"); v != "" {
		profile.LogFilePath = v
	}
	if v := os.Getenv("DAYWISE_LOG_DEBUG_MODE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			profile.LogDebugMode = b
		}
	}

	return profile, nil
}

func applyFloatEnv(field *float64, envName string) {
	v := os.Getenv(envName)
	if v == "" {
		return
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		*field = f
	}
}

func applyIntEnv(field *int, envName string) {
	v := os.Getenv(envName)
	if v == "" {
		return
	}
	if n, err := strconv.Atoi(v); err == nil {
		*field = n
	}
}
