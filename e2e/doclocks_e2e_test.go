//go:build e2e
// +build e2e

package e2e

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os"
	"testing"
	"time"

	_ "github.com/go-sql-driver/mysql"
	types "github.com/vibast-solutions/ms-go-doclocks/app/types"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
)

const (
	defaultHTTPBase = "http://localhost:8080"
	defaultGRPCAddr = "localhost:9090"
	defaultMySQLDSN = "root:root@tcp(localhost:3307)/doclocks?parseTime=true&loc=UTC"
)

type httpClient struct {
	baseURL string
	client  *http.Client
}

func newHTTPClient() *httpClient {
	base := os.Getenv("DOCLOCKS_HTTP_URL")
	if base == "" {
		base = defaultHTTPBase
	}
	return &httpClient{
		baseURL: base,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *httpClient) do(t *testing.T, method, path string, body any) (*http.Response, []byte) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal failed: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		t.Fatalf("new request failed: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		t.Fatalf("http request failed: %v", err)
	}
	defer resp.Body.Close()

	buf := &bytes.Buffer{}
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		t.Fatalf("read response failed: %v", err)
	}
	return resp, buf.Bytes()
}

func waitForHTTP(baseURL string, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	client := &http.Client{Timeout: 2 * time.Second}
	for time.Now().Before(deadline) {
		resp, err := client.Get(baseURL + "/health")
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return nil
			}
		}
		time.Sleep(500 * time.Millisecond)
	}
	return fmt.Errorf("http service not ready at %s", baseURL)
}

func waitForGRPC(addr string, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		conn, err := net.DialTimeout("tcp", addr, 2*time.Second)
		if err == nil {
			_ = conn.Close()
			return nil
		}
		time.Sleep(500 * time.Millisecond)
	}
	return fmt.Errorf("grpc service not ready at %s", addr)
}

func openDB(t *testing.T) *sql.DB {
	t.Helper()
	dsn := os.Getenv("DOCLOCKS_MYSQL_DSN")
	if dsn == "" {
		dsn = defaultMySQLDSN
	}
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		t.Fatalf("open db failed: %v", err)
	}
	if err := db.Ping(); err != nil {
		t.Fatalf("ping db failed: %v", err)
	}
	return db
}

func waitForReleaseReason(t *testing.T, db *sql.DB, lockID, reason string, timeout time.Duration) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		var got sql.NullString
		err := db.QueryRow("SELECT release_reason FROM exclusive_locks WHERE id = ?", lockID).Scan(&got)
		if err == nil && got.Valid && got.String == reason {
			return
		}
		if err != nil && err != sql.ErrNoRows {
			t.Fatalf("db query failed: %v", err)
		}
		time.Sleep(500 * time.Millisecond)
	}
	t.Fatalf("timeout waiting for release_reason %q for lock_id=%s", reason, lockID)
}

func TestDocLocksE2E(t *testing.T) {
	httpBase := os.Getenv("DOCLOCKS_HTTP_URL")
	if httpBase == "" {
		httpBase = defaultHTTPBase
	}
	grpcAddr := os.Getenv("DOCLOCKS_GRPC_ADDR")
	if grpcAddr == "" {
		grpcAddr = defaultGRPCAddr
	}

	if err := waitForHTTP(httpBase, 30*time.Second); err != nil {
		t.Fatalf("http not ready: %v", err)
	}
	if err := waitForGRPC(grpcAddr, 30*time.Second); err != nil {
		t.Fatalf("grpc not ready: %v", err)
	}

	db := openDB(t)
	defer db.Close()

	client := newHTTPClient()
	resumeID := fmt.Sprintf("e2e-resume-%d", time.Now().UnixNano())

	t.Run("HTTPValidation", func(t *testing.T) {
		resp, _ := client.do(t, http.MethodPost, "/locks/exclusive", map[string]string{})
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("expected 400 for missing fields, got %d", resp.StatusCode)
		}

		resp, _ = client.do(t, http.MethodPost, "/locks/advisory", map[string]any{
			"owner_id":    "alice",
			"target_type": "resume",
			"target_id":   resumeID,
			"lock_type":   "delete",
		})
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("expected 400 for unknown lock type, got %d", resp.StatusCode)
		}
	})

	t.Run("HTTPExclusiveConflict", func(t *testing.T) {
		resp, body := client.do(t, http.MethodPost, "/locks/exclusive", map[string]any{
			"owner_id":    "alice",
			"target_type": "resume",
			"target_id":   resumeID,
			"section":     "summary",
			"ttl_seconds": 60,
		})
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("acquire failed: %d body: %s", resp.StatusCode, string(body))
		}
		var lock struct {
			ID string `json:"id"`
		}
		if err := json.Unmarshal(body, &lock); err != nil {
			t.Fatalf("decode lock: %v", err)
		}

		resp, body = client.do(t, http.MethodPost, "/locks/exclusive", map[string]any{
			"owner_id":    "bob",
			"target_type": "resume",
			"target_id":   resumeID,
			"section":     "summary",
		})
		if resp.StatusCode != http.StatusConflict {
			t.Fatalf("expected 409, got %d", resp.StatusCode)
		}
		var conflict struct {
			Reason string `json:"reason"`
			Holder struct {
				LockID string `json:"lock_id"`
			} `json:"holder"`
		}
		if err := json.Unmarshal(body, &conflict); err != nil || conflict.Holder.LockID != lock.ID {
			t.Fatalf("unexpected conflict body: %s", string(body))
		}

		resp, _ = client.do(t, http.MethodPost, "/locks/exclusive/"+lock.ID+"/release", map[string]string{"owner_id": "alice"})
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("release failed: %d", resp.StatusCode)
		}
		waitForReleaseReason(t, db, lock.ID, "released", 5*time.Second)
	})

	t.Run("ReaperExpiresLease", func(t *testing.T) {
		resp, body := client.do(t, http.MethodPost, "/locks/exclusive", map[string]any{
			"owner_id":    "alice",
			"target_type": "resume",
			"target_id":   resumeID,
			"section":     "skills",
			"ttl_seconds": 1,
		})
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("acquire failed: %d body: %s", resp.StatusCode, string(body))
		}
		var lock struct {
			ID string `json:"id"`
		}
		if err := json.Unmarshal(body, &lock); err != nil {
			t.Fatalf("decode lock: %v", err)
		}
		waitForReleaseReason(t, db, lock.ID, "expired", 30*time.Second)

		resp, _ = client.do(t, http.MethodPost, "/locks/exclusive/"+lock.ID+"/heartbeat", map[string]string{"owner_id": "alice"})
		if resp.StatusCode != http.StatusGone {
			t.Fatalf("expected 410 after expiry, got %d", resp.StatusCode)
		}
	})

	conn, err := grpc.NewClient(grpcAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		t.Fatalf("grpc client failed: %v", err)
	}
	defer conn.Close()

	grpcClient := types.NewDocumentLocksServiceClient(conn)

	t.Run("GRPCValidation", func(t *testing.T) {
		_, err := grpcClient.AcquireExclusiveLock(context.Background(), &types.AcquireExclusiveLockRequest{})
		if status.Code(err) != codes.InvalidArgument {
			t.Fatalf("expected InvalidArgument, got %v", err)
		}
	})

	t.Run("GRPCAdvisoryAndCheckWrite", func(t *testing.T) {
		ctx := context.Background()
		held, err := grpcClient.AcquireAdvisoryLock(ctx, &types.AcquireAdvisoryLockRequest{
			OwnerId:    "carol",
			TargetType: "resume",
			TargetId:   resumeID,
			LockType:   "edit",
			Scope:      &types.Scope{Sections: []string{"experience"}},
			TtlSeconds: 60,
		})
		if err != nil {
			t.Fatalf("grpc acquire advisory failed: %v", err)
		}

		_, err = grpcClient.CheckWrite(ctx, &types.CheckWriteRequest{
			OwnerId:    "dave",
			TargetType: "resume",
			TargetId:   resumeID,
			Scope:      &types.Scope{Fields: []string{"experience.0.title"}},
		})
		if status.Code(err) != codes.AlreadyExists {
			t.Fatalf("expected AlreadyExists, got %v", err)
		}

		if _, err := grpcClient.ReleaseAdvisoryLock(ctx, &types.LockRequest{LockId: held.Lock.Id, OwnerId: "dave"}); status.Code(err) != codes.PermissionDenied {
			t.Fatalf("expected PermissionDenied, got %v", err)
		}
		if _, err := grpcClient.ReleaseAdvisoryLock(ctx, &types.LockRequest{LockId: held.Lock.Id, OwnerId: "carol"}); err != nil {
			t.Fatalf("grpc release advisory failed: %v", err)
		}
	})
}
