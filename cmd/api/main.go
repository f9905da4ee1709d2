package main

import (
	_ "github.com/joho/godotenv/autoload"
)

// @title Document QA API
// @version 1.0
// @description Upload documents, attach questions and generate answers.
// @BasePath /
func main() {
	Execute()
}
