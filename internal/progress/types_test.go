package progress_test

import (
	"strings"
	"testing"

	"github.com/schoolboyqueue/specforge/internal/progress"
)

// TestStageStatus_String tests the String() method of StageStatus enum
func TestStageStatus_String(t *testing.T) {
	tests := []struct {
		name   string
		status progress.StageStatus
		want   string
	}{
		{
			name:   "pending status",
			status: progress.StagePending,
			want:   "pending",
		},
		{
			name:   "in_progress status",
			status: progress.StageInProgress,
			want:   "in_progress",
		},
		{
			name:   "completed status",
			status: progress.StageCompleted,
			want:   "completed",
		},
		{
			name:   "failed status",
			status: progress.StageFailed,
			want:   "failed",
		},
		{
			name:   "unknown status",
			status: progress.StageStatus(42),
			want:   "unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.status.String()
			if got != tt.want {
				t.Errorf("StageStatus.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestStageInfo_Validate tests all validation rules for StageInfo
func TestStageInfo_Validate(t *testing.T) {
	tests := []struct {
		name    string
		stage   progress.StageInfo
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid stage info",
			stage: progress.StageInfo{
				Name:        "generate",
				Number:      3,
				TotalStages: 8,
				Status:      progress.StageInProgress,
				Attempt:     0,
				MaxAttempts: 3,
			},
			wantErr: false,
		},
		{
			name: "empty name",
			stage: progress.StageInfo{
				Name:        "",
				Number:      1,
				TotalStages: 8,
				Status:      progress.StageInProgress,
			},
			wantErr: true,
			errMsg:  "stage name cannot be empty",
		},
		{
			name: "number less than or equal to zero",
			stage: progress.StageInfo{
				Name:        "plan",
				Number:      0,
				TotalStages: 8,
			},
			wantErr: true,
			errMsg:  "stage number must be > 0",
		},
		{
			name: "total stages less than or equal to zero",
			stage: progress.StageInfo{
				Name:        "plan",
				Number:      1,
				TotalStages: 0,
			},
			wantErr: true,
			errMsg:  "total stages must be > 0",
		},
		{
			name: "number exceeds total",
			stage: progress.StageInfo{
				Name:        "write",
				Number:      9,
				TotalStages: 8,
			},
			wantErr: true,
			errMsg:  "stage number cannot exceed total stages",
		},
		{
			name: "negative attempt",
			stage: progress.StageInfo{
				Name:        "generate",
				Number:      3,
				TotalStages: 8,
				Attempt:     -1,
			},
			wantErr: true,
			errMsg:  "attempt cannot be negative",
		},
		{
			name: "negative max attempts",
			stage: progress.StageInfo{
				Name:        "generate",
				Number:      3,
				TotalStages: 8,
				MaxAttempts: -1,
			},
			wantErr: true,
			errMsg:  "max attempts cannot be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.stage.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected validation error, got nil")
				}
				if !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("error %q does not contain %q", err.Error(), tt.errMsg)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected validation error: %v", err)
			}
		})
	}
}

func TestSelectSymbols(t *testing.T) {
	t.Run("unicode terminal", func(t *testing.T) {
		symbols := progress.SelectSymbols(progress.TerminalCapabilities{SupportsUnicode: true})
		if symbols.Checkmark != "✓" {
			t.Errorf("expected unicode checkmark, got %q", symbols.Checkmark)
		}
	})

	t.Run("ascii fallback", func(t *testing.T) {
		symbols := progress.SelectSymbols(progress.TerminalCapabilities{SupportsUnicode: false})
		if symbols.Checkmark != "[OK]" {
			t.Errorf("expected ASCII checkmark, got %q", symbols.Checkmark)
		}
		if symbols.Failure != "[FAIL]" {
			t.Errorf("expected ASCII failure mark, got %q", symbols.Failure)
		}
	})
}
