package config

import "github.com/joho/godotenv"

// Files consulted at startup, most specific first. godotenv never overwrites
// variables already set, so real environment values win over file values.
var envFiles = []string{".env.local", ".env"}

// LoadEnvFiles loads optional .env files into the process environment.
// Missing files are not an error.
func LoadEnvFiles() {
	for _, file := range envFiles {
		_ = godotenv.Load(file)
	}
}
