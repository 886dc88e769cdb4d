//go:build !windows

package main

func ensureConsole() {}
