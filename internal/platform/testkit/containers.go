//go:build integration_pg || integration_ch

package testkit

import (
	"context"
	"fmt"
	"testing"
	"time"

	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// container starts req and returns the mapped address of port plus a stop func
func container(t *testing.T, req tc.ContainerRequest, port string) (addr string, stop func()) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		cancel()
		t.Fatalf("failed to start %s container: %v", req.Image, err)
	}

	host, err := c.Host(ctx)
	if err != nil {
		_ = c.Terminate(context.Background())
		cancel()
		t.Fatalf("failed to get container host: %v", err)
	}
	mp, err := c.MappedPort(ctx, port)
	if err != nil {
		_ = c.Terminate(context.Background())
		cancel()
		t.Fatalf("failed to get mapped port: %v", err)
	}

	stop = func() {
		_ = c.Terminate(context.Background())
		cancel()
	}
	return fmt.Sprintf("%s:%s", host, mp.Port()), stop
}

// StartPostgres launches a disposable postgres and returns its DSN
func StartPostgres(t *testing.T) (dsn string, stop func()) {
	t.Helper()
	addr, stop := container(t, tc.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "postgres",
			"POSTGRES_PASSWORD": "postgres",
			"POSTGRES_DB":       "postgres",
		},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort("5432/tcp"),
			wait.ForLog("database system is ready to accept connections"),
		).WithDeadline(2 * time.Minute),
	}, "5432/tcp")
	return fmt.Sprintf("postgres://postgres:postgres@%s/postgres?sslmode=disable", addr), stop
}

// StartClickHouse launches a disposable clickhouse and returns its native protocol DSN
func StartClickHouse(t *testing.T) (dsn string, stop func()) {
	t.Helper()
	addr, stop := container(t, tc.ContainerRequest{
		Image:        "clickhouse/clickhouse-server:24.8-alpine",
		ExposedPorts: []string{"9000/tcp", "8123/tcp"},
		Env: map[string]string{
			"CLICKHOUSE_USER":     "salesboard",
			"CLICKHOUSE_PASSWORD": "salesboard",
			"CLICKHOUSE_DB":       "default",
		},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort("9000/tcp"),
			wait.ForHTTP("/ping").WithPort("8123/tcp"),
		).WithDeadline(2 * time.Minute),
	}, "9000/tcp")
	return fmt.Sprintf("clickhouse://salesboard:salesboard@%s/default", addr), stop
}
