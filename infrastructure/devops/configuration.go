package devops

import (
	"context"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
)

type DBEntry struct {
	Name     string `yaml:"name"`
	Host     string `yaml:"host"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

type JiraCredentials struct {
	Email    string `yaml:"email"`
	APIToken string `yaml:"api_token"`
}

// AppConfig is the deployment configuration kept as a YAML document in one
// SSM parameter: tenant databases plus the Jira service account.
type AppConfig struct {
	Databases []DBEntry       `yaml:"databases"`
	Jira      JiraCredentials `yaml:"jira"`
}

var (
	once    sync.Once
	appCfg  *AppConfig
	loadErr error
)

func LoadAppConfig(ctx context.Context) (*AppConfig, error) {
	once.Do(func() {
		paramName := os.Getenv("CONFIG_PARAMETER")
		if paramName == "" {
			paramName = "workingtime/config"
		}

		cfg, err := config.LoadDefaultConfig(ctx)
		if err != nil {
			loadErr = fmt.Errorf("load aws config: %w", err)
			return
		}

		client := ssm.NewFromConfig(cfg)

		out, err := client.GetParameter(ctx, &ssm.GetParameterInput{
			Name:           aws.String(paramName),
			WithDecryption: aws.Bool(true),
		})
		if err != nil {
			loadErr = fmt.Errorf("get parameter: %w", err)
			return
		}

		var parsed AppConfig
		if err := yaml.Unmarshal([]byte(*out.Parameter.Value), &parsed); err != nil {
			loadErr = fmt.Errorf("unmarshal yaml: %w", err)
			return
		}

		appCfg = &parsed
	})

	return appCfg, loadErr
}

// JiraFromEnv falls back to env credentials for local development.
func JiraFromEnv() JiraCredentials {
	return JiraCredentials{
		Email:    os.Getenv("JIRA_EMAIL"),
		APIToken: os.Getenv("JIRA_API_TOKEN"),
	}
}
