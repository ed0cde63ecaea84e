package config

import (
	"os"
	"path/filepath"

	"gopkg.in/ini.v1"
)

// EnvPath names the environment variable holding an optional config file.
const EnvPath = "SYSTOOLKIT_CONFIG"

type Config struct {
	Log          LogConfig
	Shell        string
	SudoPassword string
	Demo         DemoConfig
}

type LogConfig struct {
	Level  string
	File   string // empty means stderr
	Format string // "text" or "json"
}

// DemoConfig holds the inputs of the demonstration sequence.
type DemoConfig struct {
	Command         string
	ListPath        string
	DiskPath        string
	NewDirectory    string
	ExistsPath      string
	CopySource      string
	CopyDestination string
	KillPID         int32
}

// Default mirrors the fixed inputs of the demonstration run.
func Default() Config {
	listPath, err := os.UserHomeDir()
	if err != nil {
		listPath = "/"
	}
	return Config{
		Log: LogConfig{Level: "info", Format: "text"},
		Demo: DemoConfig{
			Command:         "uptime",
			ListPath:        listPath,
			DiskPath:        "/",
			NewDirectory:    filepath.Join(os.TempDir(), "systoolkit", "new_folder"),
			ExistsPath:      "/path/to/file",
			CopySource:      "/path/to/source/file",
			CopyDestination: "/path/to/destination/file",
			KillPID:         12345,
		},
	}
}

// FromEnv loads the file named by SYSTOOLKIT_CONFIG, or the defaults when
// the variable is unset.
func FromEnv() (Config, error) {
	path := os.Getenv(EnvPath)
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// Load reads an INI file over the defaults. Missing keys keep their
// default values.
func Load(source interface{}) (Config, error) {
	file, err := ini.Load(source)
	if err != nil {
		return Config{}, err
	}

	c := Default()

	log := file.Section("log")
	c.Log.Level = log.Key("level").MustString(c.Log.Level)
	c.Log.File = log.Key("file").MustString(c.Log.File)
	c.Log.Format = log.Key("format").In(c.Log.Format, []string{"text", "json"})

	shell := file.Section("shell")
	c.Shell = shell.Key("path").MustString(c.Shell)
	c.SudoPassword = shell.Key("sudo_password").MustString(c.SudoPassword)

	demo := file.Section("demo")
	c.Demo.Command = demo.Key("command").MustString(c.Demo.Command)
	c.Demo.ListPath = demo.Key("list_path").MustString(c.Demo.ListPath)
	c.Demo.DiskPath = demo.Key("disk_path").MustString(c.Demo.DiskPath)
	c.Demo.NewDirectory = demo.Key("new_directory").MustString(c.Demo.NewDirectory)
	c.Demo.ExistsPath = demo.Key("exists_path").MustString(c.Demo.ExistsPath)
	c.Demo.CopySource = demo.Key("copy_source").MustString(c.Demo.CopySource)
	c.Demo.CopyDestination = demo.Key("copy_destination").MustString(c.Demo.CopyDestination)
	if demo.HasKey("kill_pid") {
		pid, err := demo.Key("kill_pid").Int()
		if err != nil {
			return Config{}, err
		}
		c.Demo.KillPID = int32(pid)
	}

	return c, nil
}
