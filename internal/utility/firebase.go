package utility

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

var (
	firebaseApp  *firebase.App
	firebaseAuth *auth.Client
)

// findRootDir tìm thư mục gốc của project (thư mục chứa config/env)
func findRootDir() (string, error) {
	currentDir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		envDir := filepath.Join(currentDir, "config", "env")
		if _, err := os.Stat(envDir); err == nil {
			return currentDir, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return "", fmt.Errorf("không tìm thấy thư mục gốc của project")
		}
		currentDir = parentDir
	}
}

// InitFirebase khởi tạo Firebase Admin SDK từ service account credentials.
// Đường dẫn relative được resolve từ thư mục gốc của project.
func InitFirebase(projectID, credentialsPath string) error {
	if credentialsPath == "" {
		return fmt.Errorf("firebase credentials path is empty")
	}

	if !filepath.IsAbs(credentialsPath) {
		rootDir, err := findRootDir()
		if err != nil {
			return err
		}
		credentialsPath = filepath.Join(rootDir, credentialsPath)
	}

	if _, err := os.Stat(credentialsPath); os.IsNotExist(err) {
		return fmt.Errorf("firebase credentials file not found: %s", credentialsPath)
	}

	ctx := context.Background()
	conf := &firebase.Config{ProjectID: projectID}
	app, err := firebase.NewApp(ctx, conf, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return fmt.Errorf("error initializing firebase app: %w", err)
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		return fmt.Errorf("error initializing firebase auth client: %w", err)
	}

	firebaseApp = app
	firebaseAuth = authClient
	return nil
}

// GetFirebaseAuth trả về Firebase Auth client (nil nếu chưa init)
func GetFirebaseAuth() *auth.Client {
	return firebaseAuth
}

// VerifyIDToken xác thực Firebase ID token và trả về token đã decode
func VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error) {
	if firebaseAuth == nil {
		return nil, fmt.Errorf("firebase auth client chưa được khởi tạo")
	}
	return firebaseAuth.VerifyIDToken(ctx, idToken)
}
