package main

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"os"

	"alyf.de/workingtime/core"
	"alyf.de/workingtime/infrastructure/devops"
	"alyf.de/workingtime/jira"
	"alyf.de/workingtime/web/handlers/freelancertime"
	"alyf.de/workingtime/web/handlers/workingtime"
	"alyf.de/workingtime/web/middlewares"
	"github.com/gin-gonic/gin"
)

func main() {
	r := gin.Default()
	dsn := os.Getenv("DSN")
	fmt.Printf("using DSN: %s\n", dsn)

	dm, err := core.New(dsn, 10)
	if err != nil {
		log.Fatal(err)
	}
	defer dm.Close()

	jiraCreds := devops.JiraFromEnv()
	if jiraCreds.Email == "" {
		cfg, err := devops.LoadAppConfig(context.Background())
		if err != nil {
			log.Fatal("Failed to load app config:", err)
		}
		jiraCreds = cfg.Jira
	}
	jiraClient := jira.NewJiraClient(jiraCreds.Email, jiraCreds.APIToken)

	base64Secret := os.Getenv("WORKINGTIME_SIGNING_SECRET")
	jwtSecret, err := base64.StdEncoding.DecodeString(base64Secret)
	if err != nil {
		log.Fatal("Failed to decode JWT secret:", err)
	}

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	protected := r.Group("/api/v1")
	protected.Use(middlewares.Authentication(jwtSecret))
	{
		workingtime.Register(protected, dm, jiraClient)
		freelancertime.Register(protected, dm, jiraClient)
	}

	r.Run()
}
