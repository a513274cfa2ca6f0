package embedded

import (
	"embed"
	"testing"
	"testing/fstest"
)

// 注意：真正的资源嵌入在项目根目录的 embed.go 中。
// 这里用 fstest.MapFS 测试 embedded 包的接口功能。

func resetState() {
	dataFS = nil
	initialized = false
}

func TestIsInitialized(t *testing.T) {
	resetState()
	defer resetState()

	if IsInitialized() {
		t.Error("Expected IsInitialized() to return false before Init()")
	}

	var emptyFS embed.FS
	Init(emptyFS)

	if !IsInitialized() {
		t.Error("Expected IsInitialized() to return true after Init()")
	}
}

func TestNotInitialized(t *testing.T) {
	resetState()

	if _, err := ReadFile(SceneConfigPath); err == nil {
		t.Error("Expected error when calling ReadFile() before Init()")
	} else if err.Error() != "embedded package not initialized, call Init() first" {
		t.Errorf("Unexpected error message: %v", err)
	}
}

func TestReadFile(t *testing.T) {
	resetState()
	defer resetState()

	InitFS(fstest.MapFS{
		"data/scene.yaml": &fstest.MapFile{Data: []byte("width: 800\n")},
	})

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"plain path", "data/scene.yaml", false},
		{"dot prefix", "./data/scene.yaml", false},
		{"missing file", "data/missing.yaml", true},
		{"bad prefix", "assets/scene.yaml", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := ReadFile(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReadFile(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if !tt.wantErr && string(data) != "width: 800\n" {
				t.Errorf("ReadFile(%q) = %q", tt.path, data)
			}
		})
	}
}
