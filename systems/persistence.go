package systems

import (
	"bytes"

	cfg "github.com/automoto/doomerang-kinetics/config"
	"github.com/quasilyte/gdata"
	"go.uber.org/zap"
)

const tuningKey = "tuning"

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for tuning storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "doomerang_kinetics",
	})
	if err != nil {
		logger.Warn("could not initialize persistence", zap.Error(err))
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSavedTuning loads the last saved tuning. It returns nil without an
// error when persistence is unavailable or nothing was saved yet.
func LoadSavedTuning() (*cfg.Tuning, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(tuningKey)
	if err != nil {
		logger.Warn("could not load tuning", zap.Error(err))
		return nil, nil
	}
	if data == nil {
		// No saved tuning yet, use defaults
		return nil, nil
	}

	tuning, err := cfg.LoadTuning(bytes.NewReader(data))
	if err != nil {
		logger.Warn("could not parse saved tuning", zap.Error(err))
		return nil, err
	}
	return &tuning, nil
}

// SaveTuning saves the tuning to disk as YAML
func SaveTuning(t cfg.Tuning) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := t.Marshal()
	if err != nil {
		logger.Warn("could not serialize tuning", zap.Error(err))
		return err
	}

	if err := gdataManager.SaveItem(tuningKey, data); err != nil {
		logger.Warn("could not save tuning", zap.Error(err))
		return err
	}
	return nil
}
