package main

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

type CmdStat struct {
	cmd

	Args struct {
		Path string `positional-arg-name:"path" required:"true"`
	} `positional-args:"yes"`
}

type statInfo struct {
	Path       string `yaml:"path"`
	Directory  string `yaml:"directory"`
	Name       string `yaml:"name"`
	Extension  string `yaml:"extension,omitempty"`
	Exists     bool   `yaml:"exists"`
	Type       string `yaml:"type,omitempty"`
	Readable   bool   `yaml:"readable"`
	Writable   bool   `yaml:"writable"`
	Executable bool   `yaml:"executable"`
	Size       int64  `yaml:"size"`
	Modified   string `yaml:"modified,omitempty"`
	MimeType   string `yaml:"mime,omitempty"`
}

func (c *CmdStat) Execute(args []string) error {
	c.init()

	e := expand(c.Args.Path)
	info := statInfo{
		Path:       e.Path(),
		Directory:  e.Dir(),
		Name:       e.Name(),
		Extension:  e.Extension(),
		Exists:     e.Exists(),
		Readable:   e.CanRead(),
		Writable:   e.CanWrite(),
		Executable: e.CanExecute(),
		Size:       e.Size(),
		MimeType:   e.MimeType(),
	}

	switch {
	case e.IsFile():
		info.Type = "file"
	case e.IsDir():
		info.Type = "directory"
	case e.Exists():
		info.Type = "other"
	}

	if mod := e.LastModified(); mod != -1 {
		info.Modified = time.Unix(mod, 0).Format(time.RFC3339)
	}

	data, err := yaml.Marshal(info)
	if err != nil {
		return err
	}

	fmt.Print(string(data))
	return nil
}
