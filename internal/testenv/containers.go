// Helpers for running tests against real infrastructure with
// testcontainers: a MariaDB instance bootstrapped with the service
// schema and an Authorizer IdP wired to it. Used by the integration
// tests and by the standalone testcontainers command. Expects
// environment variables to be loaded from .env files.
package testenv

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	_ "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"

	"github.com/autohaus/autohaus/data"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/network"
	"github.com/testcontainers/testcontainers-go/wait"
)

type TestContainers struct {
	SessionID           string
	Network             *testcontainers.DockerNetwork
	DBContainer         testcontainers.Container
	AuthorizerContainer testcontainers.Container

	// Host-mapped endpoints for test processes
	DBHost    string
	DBPort    nat.Port
	AuthzURL  string
	NetworkID string
}

func (tc *TestContainers) Terminate(t *testing.T) {
	ctx := context.Background()
	if tc.AuthorizerContainer != nil {
		if err := tc.AuthorizerContainer.Terminate(ctx); err != nil {
			logMessage(t, "Failed to terminate Authorizer: %v", err)
		}
	}
	if tc.DBContainer != nil {
		if err := tc.DBContainer.Terminate(ctx); err != nil {
			logMessage(t, "Failed to terminate MariaDB: %v", err)
		}
	}
	if tc.Network != nil {
		if err := tc.Network.Remove(ctx); err != nil {
			logMessage(t, "Failed to remove network: %v", err)
		}
	}
}

// CreateAllTestContainers starts the database and Authorizer containers
// on a fresh network and bootstraps the schema. Pass nil outside of a
// test process; failures then exit instead of calling t.Fatalf.
func CreateAllTestContainers(t *testing.T) (*TestContainers, error) {
	ctx := context.Background()
	testContainers := &TestContainers{
		SessionID: uuid.New().String(),
	}

	nw, err := network.New(ctx)
	if err != nil {
		exitWithError(t, err, "Failed to create network")
	}
	testContainers.Network = nw
	testContainers.NetworkID = nw.ID
	networkName := nw.Name

	// Database container
	dbNetworkName := envOr("DB_HOST", "mariadb")
	tcpDbPort, err := nat.NewPort("tcp", envOr("DB_PORT", "3306"))
	if err != nil {
		testContainers.Terminate(t)
		exitWithError(t, err, "Failed to create DB port")
	}
	dbContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        envOr("DB_IMAGE", "mariadb:11"),
			ExposedPorts: []string{string(tcpDbPort)},
			Labels:       map[string]string{"autohaus.session": testContainers.SessionID},
			Env: map[string]string{
				"MYSQL_ROOT_PASSWORD": envOr("DB_ROOT_PASSWORD", "root"),
				"MYSQL_DATABASE":      envOr("DB_DATABASE", "autohaus"),
				"MYSQL_USER":          envOr("DB_USER", "autohaus"),
				"MYSQL_PASSWORD":      envOr("DB_PASSWORD", "autohaus"),
			},
			WaitingFor: wait.ForListeningPort(tcpDbPort).WithStartupTimeout(60 * time.Second),
			Networks:   []string{networkName},
			NetworkAliases: map[string][]string{
				networkName: {dbNetworkName},
			},
		},
		Started: true,
	})
	if err != nil {
		testContainers.Terminate(t)
		exitWithError(t, err, "Failed to start MariaDB")
	}
	testContainers.DBContainer = dbContainer

	dbHost, _ := dbContainer.Host(ctx)
	dbPort, _ := dbContainer.MappedPort(ctx, tcpDbPort)
	testContainers.DBHost = dbHost
	testContainers.DBPort = dbPort

	if err := initMariaDB(t, testContainers, dbHost, dbPort); err != nil {
		testContainers.Terminate(t)
		exitWithError(t, err, "Failed to initialize database")
	}

	// Authorizer container
	authzNetworkName := "authorizer"
	tcpAuthzPort, err := nat.NewPort("tcp", envOr("AUTHZ_PORT", "8080"))
	if err != nil {
		testContainers.Terminate(t)
		exitWithError(t, err, "Failed to create Authorizer port")
	}
	authzDbConnection := fmt.Sprintf("root:%s@tcp(%s:%s)/%s",
		envOr("DB_ROOT_PASSWORD", "root"), dbNetworkName, envOr("DB_PORT", "3306"),
		envOr("AUTHZ_DATABASE", "authorizer"))
	authorizerContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        envOr("AUTHZ_IMAGE", "lakhansamani/authorizer:1.4.4"),
			ExposedPorts: []string{string(tcpAuthzPort)},
			Labels:       map[string]string{"autohaus.session": testContainers.SessionID},
			Env: map[string]string{
				"ENV":           "production",
				"CLIENT_ID":     envOr("AUTHZ_CLIENT_ID", uuid.New().String()),
				"PORT":          envOr("AUTHZ_PORT", "8080"),
				"DATABASE_TYPE": "mariadb",
				"DATABASE_NAME": envOr("AUTHZ_DATABASE", "authorizer"),
				"DATABASE_URL":  authzDbConnection,
				"ADMIN_SECRET":  envOr("AUTHZ_ADMIN_SECRET", "secret"),
				"ROLES":         "admin,user",
				"DEFAULT_ROLES": "user",
				"LOG_LEVEL":     "info",
			},
			WaitingFor: wait.ForLog("Authorizer running at PORT:").WithStartupTimeout(30 * time.Second),
			Networks:   []string{networkName},
			NetworkAliases: map[string][]string{
				networkName: {authzNetworkName},
			},
		},
		Started: true,
	})
	if err != nil {
		testContainers.Terminate(t)
		exitWithError(t, err, "Failed to start Authorizer")
	}
	testContainers.AuthorizerContainer = authorizerContainer

	authzHost, _ := authorizerContainer.Host(ctx)
	authzPort, _ := authorizerContainer.MappedPort(ctx, tcpAuthzPort)
	testContainers.AuthzURL = fmt.Sprintf("http://%s:%s", authzHost, authzPort.Port())
	logMessage(t, "AUTHZ_URL=%s", testContainers.AuthzURL)
	logMessage(t, "DB=%s:%s", dbHost, dbPort.Port())

	return testContainers, nil
}

func initMariaDB(t *testing.T, testContainers *TestContainers, dbHost string, dbPort nat.Port) error {
	db, err := sql.Open("mysql", fmt.Sprintf("root:%s@tcp(%s:%s)/",
		envOr("DB_ROOT_PASSWORD", "root"), dbHost, dbPort.Port()))
	if err != nil {
		return err
	}
	defer db.Close()

	for i := 0; i < 30; i++ {
		err = db.Ping()
		if err == nil {
			break
		}
		time.Sleep(1 * time.Second)
	}
	if err != nil {
		return fmt.Errorf("MariaDB not ready after 30 seconds: %w", err)
	}

	statements := []string{
		fmt.Sprintf("CREATE DATABASE IF NOT EXISTS %s", envOr("DB_DATABASE", "autohaus")),
		fmt.Sprintf("CREATE DATABASE IF NOT EXISTS %s", envOr("AUTHZ_DATABASE", "authorizer")),
		fmt.Sprintf("CREATE USER IF NOT EXISTS '%s'@'%%' IDENTIFIED BY '%s'",
			envOr("DB_USER", "autohaus"), envOr("DB_PASSWORD", "autohaus")),
		fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s.authorizer_users (id CHAR(36) NOT NULL PRIMARY KEY)",
			envOr("AUTHZ_DATABASE", "authorizer")),
		fmt.Sprintf("GRANT ALL PRIVILEGES ON *.* TO 'root'@'%%' IDENTIFIED BY '%s' WITH GRANT OPTION",
			envOr("DB_ROOT_PASSWORD", "root")),
		"FLUSH PRIVILEGES",
	}
	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("%w : when executing > %s", err, stmt)
		}
	}

	if err := executeScript(db, data.InitdbMariaDBTables); err != nil {
		return fmt.Errorf("tables init failed: %w", err)
	}
	if err := executeScript(db, data.InitdbMariaDBPrivileges); err != nil {
		return fmt.Errorf("privileges init failed: %w", err)
	}
	return nil
}

// executeScript runs a multi-statement SQL script. Line comments are
// stripped; string literals in the scripts never contain "--" or ";".
func executeScript(db *sql.DB, script string) error {
	var cleaned []string
	for _, line := range strings.Split(script, "\n") {
		if idx := strings.Index(line, "--"); idx >= 0 {
			line = line[:idx]
		}
		cleaned = append(cleaned, line)
	}

	for _, stmt := range strings.Split(strings.Join(cleaned, "\n"), ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("%w : when executing > %s", err, stmt)
		}
	}
	return nil
}

func envOr(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func exitWithError(t *testing.T, err error, msg string) {
	if t != nil {
		t.Fatalf(msg+": %v", err)
	} else {
		fmt.Printf(msg+": %v\n", err)
		os.Exit(1)
	}
}

func logMessage(t *testing.T, format string, args ...any) {
	if t != nil {
		t.Logf(format, args...)
	} else {
		fmt.Printf(format+"\n", args...)
	}
}
