package configs_test

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/zap/zaptest"

	"droscher.com/Vinlogg/configs"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (suite *ConfigTestSuite) TestGetConfig_GetsNamedFile() {
	logger := zaptest.NewLogger(suite.T())

	config, err := configs.GetConfig("testdata/config.toml", logger)

	suite.Require().NoError(err)
	suite.Equal("test.local", config.DB.Host)
	suite.Equal(1234, config.DB.Port)
	suite.Equal("testuser", config.DB.User)
	suite.Equal("test123", config.DB.Password)
	suite.Equal("testdb", config.DB.Database)
	suite.Equal(5, config.DB.MaxIdleConnections)
	suite.Equal(7, config.DB.MaxOpenConnections)
	suite.Equal(666, config.Server.Port)
	suite.Equal("https://vin.example.com", config.Server.PublicURL)
	suite.Equal("authenticated", config.Auth.Audience)
	suite.Equal("issuer", config.Auth.Issuer)
	suite.Equal("secret", config.Auth.SecretKey)
	suite.Equal([]string{"systembolaget"}, config.Integrations.Retailer)
	suite.Equal("sk-test", config.OpenAI.APIKey)
	suite.Equal("vision-model", config.OpenAI.VisionModel)
	suite.Equal("tag-model", config.OpenAI.TagModel)
	suite.Equal("/tmp/vinlogg", config.Storage.Directory)
	suite.Equal("redis.local:6379", config.Redis.Addr)
	suite.Equal("vinlogg-v7", config.Offline.CacheVersion)
	suite.Equal([]string{"/", "/manifest.json"}, config.Offline.Precache)
}

func (suite *ConfigTestSuite) TestGetConfig_AppliesDefaults() {
	logger := zaptest.NewLogger(suite.T())

	suite.T().Setenv("VINLOGG_DB_HOST", "test.local")
	suite.T().Setenv("VINLOGG_DB_PASSWORD", "test123")

	config, err := configs.GetConfig("", logger)

	suite.Require().NoError(err)
	suite.Equal(5432, config.DB.Port)
	suite.Equal("postgres", config.DB.User)
	suite.Equal(8080, config.Server.Port)
	suite.Equal("gpt-4o", config.OpenAI.VisionModel)
	suite.Equal("gpt-4o-mini", config.OpenAI.TagModel)
	suite.Equal(10, config.Systembolaget.PageSize)
	suite.Equal("uploads", config.Storage.Directory)
	suite.Equal("vinlogg-v1", config.Offline.CacheVersion)
	suite.Equal([]string{"/", "/manifest.json", "/wine-icon-192.png", "/wine-icon-512.png"}, config.Offline.Precache)
	suite.Equal([]string{"systembolaget"}, config.Integrations.Retailer)
}

func (suite *ConfigTestSuite) TestGetConfig_GetsEnv() {
	logger := zaptest.NewLogger(suite.T())

	suite.T().Setenv("VINLOGG_DB_HOST", "test.local")
	suite.T().Setenv("VINLOGG_DB_PORT", "1234")
	suite.T().Setenv("VINLOGG_DB_USER", "testuser")
	suite.T().Setenv("VINLOGG_DB_PASSWORD", "test123")
	suite.T().Setenv("VINLOGG_DB_DATABASE", "testdb")
	suite.T().Setenv("VINLOGG_DB_MAXIDLECONNECTIONS", "5")
	suite.T().Setenv("VINLOGG_DB_MAXOPENCONNECTIONS", "7")
	suite.T().Setenv("VINLOGG_SERVER_PORT", "666")
	suite.T().Setenv("VINLOGG_AUTH_AUDIENCE", "audience")
	suite.T().Setenv("VINLOGG_AUTH_SECRETKEY", "secret")
	suite.T().Setenv("VINLOGG_OPENAI_APIKEY", "sk-env")
	suite.T().Setenv("VINLOGG_INTEGRATIONS_RETAILER", "systembolaget")

	config, err := configs.GetConfig("", logger)

	suite.Require().NoError(err)
	suite.Equal("test.local", config.DB.Host)
	suite.Equal(1234, config.DB.Port)
	suite.Equal("testuser", config.DB.User)
	suite.Equal("test123", config.DB.Password)
	suite.Equal("testdb", config.DB.Database)
	suite.Equal(5, config.DB.MaxIdleConnections)
	suite.Equal(7, config.DB.MaxOpenConnections)
	suite.Equal(666, config.Server.Port)
	suite.Equal("audience", config.Auth.Audience)
	suite.Equal("secret", config.Auth.SecretKey)
	suite.Equal("sk-env", config.OpenAI.APIKey)
	suite.Equal([]string{"systembolaget"}, config.Integrations.Retailer)
}

func (suite *ConfigTestSuite) TestGetConfig_EnvOverridesFile() {
	logger := zaptest.NewLogger(suite.T())

	suite.T().Setenv("VINLOGG_DB_HOST", "env.local")
	suite.T().Setenv("VINLOGG_DB_USER", "envuser")
	suite.T().Setenv("VINLOGG_DB_PASSWORD", "env123")
	suite.T().Setenv("VINLOGG_AUTH_SECRETKEY", "envsecret")
	suite.T().Setenv("VINLOGG_OPENAI_VISIONMODEL", "env-vision")

	config, err := configs.GetConfig("testdata/config.toml", logger)

	suite.Require().NoError(err)
	suite.Equal("env.local", config.DB.Host)
	suite.Equal(1234, config.DB.Port)
	suite.Equal("envuser", config.DB.User)
	suite.Equal("env123", config.DB.Password)
	suite.Equal("testdb", config.DB.Database)
	suite.Equal("envsecret", config.Auth.SecretKey)
	suite.Equal("env-vision", config.OpenAI.VisionModel)
	suite.Equal("tag-model", config.OpenAI.TagModel)
}

func (suite *ConfigTestSuite) TestGetConfig_MissingFileReturnsError() {
	logger := zaptest.NewLogger(suite.T())

	config, err := configs.GetConfig("testdata/missing.toml", logger)

	suite.Nil(config)
	suite.Error(err)
}

func (suite *ConfigTestSuite) TestGetConfig_MissingValues() {
	logger := zaptest.NewLogger(suite.T())

	config, err := configs.GetConfig("", logger)

	suite.Nil(config)
	suite.EqualError(err, "DB.Host: required validation failed, DB.Password: required validation failed")
}
