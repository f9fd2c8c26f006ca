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

package main

import (
	"context"
	"os"

	zlog "github.com/rs/zerolog/log"
	"github.com/walteh/fileheader/pkg/log"
	"gitlab.com/tozd/go/errors"
)

func main() {
	// Setup logging
	setupLogging()
	ctx := zlog.Logger.WithContext(context.Background())

	rootCmd := newRootCmd()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		// Files needing or receiving changes is the signal automated callers
		// (pre-commit, CI) key off; the summary was already printed.
		if errors.Is(err, errFilesImpacted) {
			os.Exit(1)
		}
		log.NewUserLogger(ctx).LogValidation(false, "Command failed", err)
		os.Exit(1)
	}
}
