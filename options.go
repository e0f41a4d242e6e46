// Copyright 2025 Florian Zenker (flo@znkr.io)
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

package seqdiff

import "znkr.io/seqdiff/internal/config"

// Option configures the behavior of comparison functions.
type Option = config.Option

// Minimal only discards elements that don't match anything in the other sequence. By default,
// elements that match too many elements in the other sequence may be discarded as well, which
// speeds up the comparison of large inputs, but can lead to edit scripts that are not the
// shortest possible.
func Minimal() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Minimal = true
		return config.Minimal
	}
}

// NoShift disables the shifting of change boundaries to more natural positions.
func NoShift() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Shift = false
		return config.NoShift
	}
}
