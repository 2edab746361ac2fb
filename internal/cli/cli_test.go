package cli

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"skid-extractor/internal/config"
	"skid-extractor/internal/skill"
)

const (
	enumFixture = `SKID = {
	NV_BASIC = 1,
	NV_FIRSTAID = 2,
	NV_TRICKDEAD = 3,
}
`
	infoFixture = `SKILL_INFO_LIST = {
	[1] = { "NV_BASIC", SkillName = "Basic Skill" },
	[SKID.NV_FIRSTAID] = { "NV_FIRSTAID", SkillName = "First Aid" },
	[3] = { NoNameField = 1 },
}
`
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()

	cfg := &config.Config{
		EnumPath:        filepath.Join(dir, "skillid.lub"),
		InfoPath:        filepath.Join(dir, "skillinfolist.lub"),
		IDHandleOutput:  filepath.Join(dir, "SKILL_id_handle.txt"),
		NameTableOutput: filepath.Join(dir, "skillnametable.txt"),
		EnumTable:       "SKID",
		NameField:       skill.DefaultNameField,
		DBTable:         "skill_names",
	}
	if err := os.WriteFile(cfg.EnumPath, []byte(enumFixture), 0644); err != nil {
		t.Fatalf("Failed to write enumeration fixture: %v", err)
	}
	if err := os.WriteFile(cfg.InfoPath, []byte(infoFixture), 0644); err != nil {
		t.Fatalf("Failed to write info fixture: %v", err)
	}
	return cfg
}

func execute(t *testing.T, cfg *config.Config, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(cfg)
	cmd.SetArgs(append([]string{}, args...))
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	err := cmd.Execute()
	return out.String(), err
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", path, err)
	}
	return string(data)
}

func TestExtract(t *testing.T) {
	cfg := testConfig(t)

	out, err := execute(t, cfg)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if got, want := readFile(t, cfg.IDHandleOutput), "1 NV_BASIC\n2 NV_FIRSTAID\n3 NV_TRICKDEAD\n"; got != want {
		t.Errorf("id listing = %q, want %q", got, want)
	}
	if got, want := readFile(t, cfg.NameTableOutput), "NV_BASIC#Basic Skill#\nNV_FIRSTAID#First Aid#\n"; got != want {
		t.Errorf("name table = %q, want %q", got, want)
	}

	for _, want := range []string{
		"Wrote 3 lines to " + cfg.IDHandleOutput,
		"Wrote 2 lines to " + cfg.NameTableOutput,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("stdout %q missing %q", out, want)
		}
	}
}

func TestExtractFlagsOverrideConfig(t *testing.T) {
	cfg := testConfig(t)
	jsonPath := filepath.Join(t.TempDir(), "skills.json")
	namesPath := filepath.Join(t.TempDir(), "names.txt")

	if _, err := execute(t, cfg, "--names-out", namesPath, "--json", jsonPath); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if got := readFile(t, namesPath); !strings.HasPrefix(got, "NV_BASIC#Basic Skill#") {
		t.Errorf("name table = %q", got)
	}
	if got := readFile(t, jsonPath); !strings.Contains(got, `"handle": "NV_FIRSTAID"`) {
		t.Errorf("JSON export = %q", got)
	}
}

func TestExtractMissingInfoList(t *testing.T) {
	cfg := testConfig(t)
	if err := os.Remove(cfg.InfoPath); err != nil {
		t.Fatalf("Failed to remove info fixture: %v", err)
	}

	out, err := execute(t, cfg)
	if err != nil {
		t.Fatalf("Execute() error = %v, want success with empty name table", err)
	}

	if got := readFile(t, cfg.IDHandleOutput); strings.Count(got, "\n") != 3 {
		t.Errorf("id listing = %q, want 3 lines", got)
	}
	if got := readFile(t, cfg.NameTableOutput); got != "" {
		t.Errorf("name table = %q, want empty", got)
	}
	if !strings.Contains(out, "Wrote 0 lines to "+cfg.NameTableOutput) {
		t.Errorf("stdout %q missing empty name table summary", out)
	}
}

func TestExtractFatalErrors(t *testing.T) {
	t.Run("missing enumeration source", func(t *testing.T) {
		cfg := testConfig(t)
		if err := os.Remove(cfg.EnumPath); err != nil {
			t.Fatalf("Failed to remove enumeration fixture: %v", err)
		}

		_, err := execute(t, cfg)
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Execute() error = %v, want fs.ErrNotExist", err)
		}
		if _, statErr := os.Stat(cfg.IDHandleOutput); statErr == nil {
			t.Error("id listing written despite fatal input error")
		}
	})

	t.Run("enumeration without entries", func(t *testing.T) {
		cfg := testConfig(t)
		if err := os.WriteFile(cfg.EnumPath, []byte("SKID = { }"), 0644); err != nil {
			t.Fatalf("Failed to rewrite fixture: %v", err)
		}

		_, err := execute(t, cfg)
		if !errors.Is(err, skill.ErrNoEntries) {
			t.Errorf("Execute() error = %v, want %v", err, skill.ErrNoEntries)
		}
	})

	t.Run("unwritable output", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.NameTableOutput = filepath.Join(t.TempDir(), "missing", "names.txt")

		if _, err := execute(t, cfg); err == nil {
			t.Error("Execute() succeeded, want output error")
		}
	})

	t.Run("unknown encoding", func(t *testing.T) {
		cfg := testConfig(t)

		if _, err := execute(t, cfg, "--encoding", "no-such-charset"); err == nil {
			t.Error("Execute() succeeded, want encoding error")
		}
	})
}

func TestPublishRequiresDatabaseURL(t *testing.T) {
	cfg := testConfig(t)

	if _, err := execute(t, cfg, "publish"); err == nil {
		t.Error("publish without a database URL succeeded, want error")
	}
	if _, statErr := os.Stat(cfg.IDHandleOutput); statErr == nil {
		t.Error("publish wrote outputs before validating the database URL")
	}
}

func TestRejectsArguments(t *testing.T) {
	cfg := testConfig(t)

	if _, err := execute(t, cfg, "unexpected"); err == nil {
		t.Error("Execute() with a positional argument succeeded, want error")
	}
}

func TestExtractFromDataDir(t *testing.T) {
	cfg := testConfig(t)

	dataDir := t.TempDir()
	nested := filepath.Join(dataDir, "data", "luafiles514", "lua files", "skillinfoz")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatalf("Failed to create data tree: %v", err)
	}
	for _, src := range []string{cfg.EnumPath, cfg.InfoPath} {
		if err := os.Rename(src, filepath.Join(nested, filepath.Base(src))); err != nil {
			t.Fatalf("Failed to move fixture: %v", err)
		}
	}

	if _, err := execute(t, cfg, "--data-dir", dataDir); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if got := readFile(t, cfg.NameTableOutput); got != "NV_BASIC#Basic Skill#\nNV_FIRSTAID#First Aid#\n" {
		t.Errorf("name table = %q", got)
	}
}
