package main

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runWithInput(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), append([]string{AppName}, args...), strings.NewReader(stdin), &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func writeRules(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestConstants(t *testing.T) {
	assert.NotEmpty(t, Version)
	assert.Equal(t, "racingcar", AppName)
}

func TestRun_PlaysOneRound(t *testing.T) {
	stdout, stderr, err := runWithInput(t, "pobi,woni,jun\n1\n", "--seed", "42")
	require.NoError(t, err)
	assert.Empty(t, stderr)

	assert.Contains(t, stdout, "경주할 자동차 이름을 입력하세요.(이름은 쉼표(,) 기준으로 구분)\n")
	assert.Contains(t, stdout, "시도할 횟수는 몇회인가요?\n")

	for _, name := range []string{"pobi", "woni", "jun"} {
		assert.Regexp(t, "(?m)^"+name+" : -?$", stdout)
	}

	lines := strings.Split(strings.TrimSuffix(stdout, "\n"), "\n")
	last := lines[len(lines)-1]
	assert.True(t, strings.HasPrefix(last, "최종 우승자 : "), last)
	assert.True(t, strings.HasSuffix(last, " "), "every winner is followed by a space")
	assert.Equal(t, "", lines[len(lines)-2], "blank line after the round")
}

func TestRun_SameSeedSameRace(t *testing.T) {
	first, _, err := runWithInput(t, "a,b,c,d\n8\n", "--seed", "7")
	require.NoError(t, err)
	second, _, err := runWithInput(t, "a,b,c,d\n8\n", "--seed", "7")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRun_NameTooLong(t *testing.T) {
	stdout, stderr, err := runWithInput(t, "pobi,javaji\n3\n")
	require.Error(t, err)

	assert.Equal(t, "[ERROR] : max name length is 5\n", stderr)
	assert.NotContains(t, stdout, "시도할 횟수는 몇회인가요?")
}

func TestRun_InvalidRoundCount(t *testing.T) {
	for _, rounds := range []string{"0", "-3", "abc", "3.5"} {
		t.Run(rounds, func(t *testing.T) {
			stdout, stderr, err := runWithInput(t, "pobi,woni\n"+rounds+"\n")
			require.Error(t, err)

			assert.Equal(t, "[ERROR] : invalid number format\n", stderr)
			assert.NotContains(t, stdout, "최종 우승자")
		})
	}
}

func TestRun_UsageErrorReportedOnce(t *testing.T) {
	for _, args := range [][]string{{"--bogus"}, {"analyze", "--bogus"}} {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			_, stderr, err := runWithInput(t, "", args...)
			require.Error(t, err)

			assert.NotContains(t, stderr, "Incorrect Usage")
			assert.Equal(t, 1, strings.Count(stderr, "flag provided but not defined"), stderr)
			assert.True(t, strings.HasPrefix(stderr, "[ERROR] : "), stderr)
		})
	}
}

func TestRun_ConfigFile(t *testing.T) {
	path := writeRules(t, "rules.yaml", `
name: long names
max_name_length: 10
messages:
  winner_label: "winners: "
`)

	stdout, _, err := runWithInput(t, "lightning,mcqueen\n2\n", "--config", path, "--seed", "1")
	require.NoError(t, err)
	assert.Contains(t, stdout, "lightning : ")
	assert.Contains(t, stdout, "winners: ")
}

func TestRun_ConfigFromEnvironment(t *testing.T) {
	path := writeRules(t, "rules.json", `{"messages": {"winner_label": "env winners: "}}`)
	t.Setenv("RACINGCAR_CONFIG", path)

	stdout, _, err := runWithInput(t, "pobi\n1\n")
	require.NoError(t, err)
	assert.Contains(t, stdout, "env winners: pobi \n")
}

func TestRun_BadConfig(t *testing.T) {
	path := writeRules(t, "rules.yaml", "advance_threshold: 0\n")

	_, stderr, err := runWithInput(t, "pobi\n1\n", "--config", path)
	require.Error(t, err)
	assert.Contains(t, stderr, "[ERROR] : failed to load config")
}

func TestRun_Validate(t *testing.T) {
	good := writeRules(t, "good.yaml", "name: good\n")
	bad := writeRules(t, "bad.yaml", "name: \"\"\n")

	stdout, _, err := runWithInput(t, "", "validate", good)
	require.NoError(t, err)
	assert.Contains(t, stdout, "✅ All configurations are valid!")

	stdout, stderr, err := runWithInput(t, "", "validate", good, bad)
	require.ErrorIs(t, err, errInvalidConfigs)
	assert.Contains(t, stdout, "name is required")
	assert.Contains(t, stderr, "[ERROR] : some configurations are invalid")

	_, _, err = runWithInput(t, "", "validate")
	assert.Error(t, err)
}

func TestRun_Analyze(t *testing.T) {
	stdout, _, err := runWithInput(t, "", "--seed", "5", "analyze", "--cars", "pobi,woni", "--rounds", "3", "--races", "50")
	require.NoError(t, err)

	assert.Contains(t, stdout, "Races: 50 x 3 rounds")
	assert.Contains(t, stdout, "pobi")
	assert.Contains(t, stdout, "woni")

	_, stderr, err := runWithInput(t, "", "analyze", "--cars", "toolongname")
	require.Error(t, err)
	assert.Contains(t, stderr, "max name length is 5")
}

func TestNewLogger(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelWarn},
		{"", slog.LevelWarn},
		{"INFO", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logger := newLogger(tt.level, "text", &bytes.Buffer{})
			assert.True(t, logger.Enabled(context.Background(), tt.want))
			assert.False(t, logger.Enabled(context.Background(), tt.want-1))
		})
	}

	var buf bytes.Buffer
	newLogger("info", "json", &buf).Info("hello", "k", "v")
	assert.Contains(t, buf.String(), `"msg":"hello"`)
}
