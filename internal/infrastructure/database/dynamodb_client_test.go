package database

import "testing"

func TestGetenvDefault(t *testing.T) {
	t.Setenv("AWS_REGION", "sa-east-1")
	if got := getenvDefault("AWS_REGION", "us-east-1"); got != "sa-east-1" {
		t.Fatalf("expected env value, got %q", got)
	}
	if got := getenvDefault("SOME_UNSET_KEY", "fallback"); got != "fallback" {
		t.Fatalf("expected fallback, got %q", got)
	}
}

func TestConnectDynamoDB_LocalEndpoint(t *testing.T) {
	t.Setenv("AWS_REGION", "us-east-1")
	t.Setenv("AWS_ACCESS_KEY_ID", "local")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "local")
	t.Setenv("DYNAMODB_ENDPOINT", "http://localhost:8000")

	client := ConnectDynamoDB()
	if client == nil {
		t.Fatalf("expected client")
	}
	opts := client.Options()
	if opts.BaseEndpoint == nil || *opts.BaseEndpoint != "http://localhost:8000" {
		t.Fatalf("unexpected endpoint: %+v", opts.BaseEndpoint)
	}
	if opts.Region != "us-east-1" {
		t.Fatalf("unexpected region: %q", opts.Region)
	}
}
