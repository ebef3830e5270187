package main

import "github.com/kamranshamim45/ai-job-portal/internal/app"

func main() {
	app.Run()
}
