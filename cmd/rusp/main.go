package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/labstack/gommon/color"
	"github.com/peterh/liner"
	log "github.com/sirupsen/logrus"

	"rusp/internal"
)

const (
	banner      = "Rusp REPL v0.1.0\nType 'exit' or press Ctrl+D to quit"
	prompt      = "> "
	historyFile = ".rusp_history"
)

type stdPrinter struct{}

func (s stdPrinter) Print(a ...interface{}) (n int, err error) {
	return fmt.Print(a...)
}

func (s stdPrinter) Println(a ...interface{}) (n int, err error) {
	return fmt.Println(a...)
}

func main() {
	debug := flag.Bool("debug", false, "log pipeline phases")
	flag.Parse()

	if *debug {
		log.SetLevel(log.DebugLevel)
	}

	fmt.Println(banner)

	histPath := ""
	if home, err := os.UserHomeDir(); err == nil {
		histPath = filepath.Join(home, historyFile)
	}

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if histPath != "" {
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if f, err := os.Create(histPath); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
		}()
	}

	session := internal.NewSession(stdPrinter{})

	for {
		line, err := ln.Prompt(prompt)
		if err == liner.ErrPromptAborted {
			continue
		}
		if err == io.EOF {
			fmt.Println()
			return
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, color.Red("Error reading input: "+err.Error()))
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			fmt.Println("Goodbye!")
			return
		}

		ln.AppendHistory(line)

		res, err := session.RunLine(line)
		if err != nil {
			fmt.Println(color.Red("Error: " + err.Error()))
			continue
		}
		fmt.Printf("%s: %s\n", color.Green(res.Value), res.Type)
	}
}
