package logger

import (
	"testing"

	"github.com/sirupsen/logrus"
)

func TestInitReadsEnvironment(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	Init()
	if Log.GetLevel() != logrus.DebugLevel {
		t.Fatalf("level=%v, expected debug", Log.GetLevel())
	}
	if _, ok := Log.Formatter.(*logrus.JSONFormatter); !ok {
		t.Fatalf("formatter=%T, expected JSON", Log.Formatter)
	}
}

func TestInitFallsBackOnBadLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "loud")
	t.Setenv("LOG_FORMAT", "")
	Init()
	if Log.GetLevel() != logrus.InfoLevel {
		t.Fatalf("level=%v, expected info", Log.GetLevel())
	}
	if _, ok := Log.Formatter.(*logrus.TextFormatter); !ok {
		t.Fatalf("formatter=%T, expected text", Log.Formatter)
	}
}
