// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package operation

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/walteh/fileheader/pkg/log"
	"github.com/walteh/fileheader/pkg/status"
)

// 🏃 run processes files one at a time. Each file completes its whole
// read-decide-write sequence before the next begins, and a failure on one
// file never aborts the rest: the file is logged and left untouched.
func (o *operator) run(ctx context.Context, files []string, mode Mode) (int, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Int("files", len(files)).Str("mode", mode.String()).Msg("processing files")

	impacted := 0
	for _, path := range files {
		changed, err := o.processFile(ctx, path, mode)
		if err != nil {
			logger.Debug().Err(err).Str("file", path).Msg("leaving file untouched after error")
			o.userLogger.LogHeaderChange(log.HeaderChange{
				Type:  log.FileError,
				Path:  path,
				Error: err,
			})
			o.statusMgr.TrackFile(ctx, status.FileInfo{
				Path:   path,
				Status: status.StatusSkipped,
				Reason: "error",
				Err:    err,
			})
			continue
		}
		if changed {
			impacted++
		}
	}

	logger.Debug().Int("impacted", impacted).Msg("run complete")
	return impacted, nil
}
