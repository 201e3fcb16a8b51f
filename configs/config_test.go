package configs_test

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/zap/zaptest"

	"droscher.com/Mixology/configs"
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
	suite.Equal("secret", config.Auth.SecretKey)
	suite.Equal(4, config.Auth.BcryptCost)
	suite.Equal(12, config.Auth.SessionTTLHours)
	suite.Equal([]string{"cocktaildb"}, config.Integrations.Drink)
}

func (suite *ConfigTestSuite) TestGetConfig_GetsEnv() {
	logger := zaptest.NewLogger(suite.T())

	suite.T().Setenv("MIXOLOGY_DB_HOST", "test.local")
	suite.T().Setenv("MIXOLOGY_DB_PORT", "1234")
	suite.T().Setenv("MIXOLOGY_DB_USER", "testuser")
	suite.T().Setenv("MIXOLOGY_DB_PASSWORD", "test123")
	suite.T().Setenv("MIXOLOGY_DB_DATABASE", "testdb")
	suite.T().Setenv("MIXOLOGY_DB_MAXIDLECONNECTIONS", "5")
	suite.T().Setenv("MIXOLOGY_DB_MAXOPENCONNECTIONS", "7")
	suite.T().Setenv("MIXOLOGY_SERVER_PORT", "666")
	suite.T().Setenv("MIXOLOGY_AUTH_SECRETKEY", "secret")
	suite.T().Setenv("MIXOLOGY_AUTH_BCRYPTCOST", "4")
	suite.T().Setenv("MIXOLOGY_AUTH_SESSIONTTLHOURS", "12")
	suite.T().Setenv("MIXOLOGY_INTEGRATIONS_DRINK", "cocktaildb")

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
	suite.Equal("secret", config.Auth.SecretKey)
	suite.Equal(4, config.Auth.BcryptCost)
	suite.Equal(12, config.Auth.SessionTTLHours)
	suite.Equal([]string{"cocktaildb"}, config.Integrations.Drink)
}

func (suite *ConfigTestSuite) TestGetConfig_EnvOverridesFile() {
	logger := zaptest.NewLogger(suite.T())

	suite.T().Setenv("MIXOLOGY_DB_HOST", "env.local")
	suite.T().Setenv("MIXOLOGY_DB_USER", "envuser")
	suite.T().Setenv("MIXOLOGY_DB_PASSWORD", "env123")
	suite.T().Setenv("MIXOLOGY_AUTH_SECRETKEY", "envsecret")

	config, err := configs.GetConfig("testdata/config.toml", logger)

	suite.Require().NoError(err)
	suite.Equal("env.local", config.DB.Host)
	suite.Equal(1234, config.DB.Port)
	suite.Equal("envuser", config.DB.User)
	suite.Equal("env123", config.DB.Password)
	suite.Equal("testdb", config.DB.Database)
	suite.Equal(5, config.DB.MaxIdleConnections)
	suite.Equal(7, config.DB.MaxOpenConnections)
	suite.Equal(666, config.Server.Port)
	suite.Equal("envsecret", config.Auth.SecretKey)
	suite.Equal([]string{"cocktaildb"}, config.Integrations.Drink)
}

func (suite *ConfigTestSuite) TestGetConfig_Defaults() {
	logger := zaptest.NewLogger(suite.T())

	suite.T().Setenv("MIXOLOGY_DB_HOST", "test.local")
	suite.T().Setenv("MIXOLOGY_DB_PASSWORD", "test123")
	suite.T().Setenv("MIXOLOGY_AUTH_SECRETKEY", "secret")

	config, err := configs.GetConfig("", logger)

	suite.Require().NoError(err)
	suite.Equal(5432, config.DB.Port)
	suite.Equal("postgres", config.DB.User)
	suite.Equal("postgres", config.DB.Database)
	suite.Equal(8080, config.Server.Port)
	suite.Equal(14, config.Auth.BcryptCost)
	suite.Equal(24, config.Auth.SessionTTLHours)
	suite.Equal([]string{"cocktaildb"}, config.Integrations.Drink)
}

func (suite *ConfigTestSuite) TestGetConfig_MissingValues() {
	logger := zaptest.NewLogger(suite.T())

	config, err := configs.GetConfig("", logger)

	suite.Nil(config)
	suite.EqualError(err, "DB.Host: required validation failed, DB.Password: required validation failed, Auth.SecretKey: required validation failed")
}
