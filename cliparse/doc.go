// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

	cfg, err := cliparse.ParseFlags(os.Args[1:])

Each setting is taken from its flag, then its environment variable, then a
default. See package main for the full list. LoadDotEnv preloads a .env
file without overriding variables that are already set.

ParseFlags rejects an unknown database type, mode or log level, and a
postgres database without a URL.
*/
package cliparse
