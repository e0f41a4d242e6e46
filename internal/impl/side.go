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

package impl

// Discard states for elements of a sequence.
const (
	keep         byte = 0 // Element takes part in the comparison.
	discard      byte = 1 // Element has no match in the other sequence.
	discardMaybe byte = 2 // Element has too many matches in the other sequence.
)

// side holds the state for one of the two sequences being compared.
type side struct {
	// Equivalence class of every element.
	classes []int

	// Classes of the elements that were not discarded and their index in classes.
	undiscarded []int
	index       []int

	// Result vector with a border of one element on either end, see package rvecs.
	changed []bool
}

func newSide(classes []int, changed []bool) *side {
	if len(changed) != len(classes)+2 {
		panic("result vector has wrong size")
	}
	return &side{
		classes: classes,
		changed: changed,
	}
}

// discardConfusing removes elements from the comparison that match nothing in the other sequence
// (counts has the number of occurrences of every class in the other sequence). Those elements are
// always insertions or deletions and are marked as such right away. If minimal is not set,
// elements that match too many elements in the other sequence are discarded when they appear
// between elements without match.
func (sd *side) discardConfusing(counts []int, minimal bool) {
	discards := sd.discardable(counts, minimal)
	filterDiscards(discards)

	n := 0
	for _, d := range discards {
		if d == keep {
			n++
		}
	}
	buf := make([]int, 2*n)
	sd.undiscarded, sd.index = buf[:0:n], buf[n:n]
	for i, d := range discards {
		if d == keep {
			sd.undiscarded = append(sd.undiscarded, sd.classes[i])
			sd.index = append(sd.index, i)
		} else {
			sd.changed[1+i] = true
		}
	}
}

// discardable marks every element without a match in the other sequence as discard and, unless
// minimal is set, every element with too many matches as discardMaybe.
func (sd *side) discardable(counts []int, minimal bool) []byte {
	discards := make([]byte, len(sd.classes))

	// The threshold for too many matches is 5 times the approximate square root of the length.
	many := 5
	for tem := (len(sd.classes) / 64) >> 2; tem > 0; tem >>= 2 {
		many *= 2
	}

	for i, c := range sd.classes {
		switch nmatch := counts[c]; {
		case nmatch == 0:
			discards[i] = discard
		case nmatch > many && !minimal:
			discards[i] = discardMaybe
		}
	}
	return discards
}

// filterDiscards cancels discardMaybe marks unless they occur in a run of discards that starts and
// ends with an element that is not discardMaybe.
func filterDiscards(discards []byte) {
	end := len(discards)
	for i := 0; i < end; i++ {
		switch discards[i] {
		case discardMaybe:
			// Not in the middle of a run.
			discards[i] = keep

		case discard:
			// Find the end of this run and count the discardMaybe elements in it.
			provisional := 0
			j := i
			for ; j < end && discards[j] != keep; j++ {
				if discards[j] == discardMaybe {
					provisional++
				}
			}

			// Cancel discardMaybe elements at the end of the run and shrink it.
			for j > i && discards[j-1] == discardMaybe {
				j--
				discards[j] = keep
				provisional--
			}

			// The run [i, j) starts and ends with a discard now.
			length := j - i

			// If more than a quarter of the run are discardMaybe, keep all of them.
			if provisional*4 > length {
				for ; j > i; j-- {
					if discards[j-1] == discardMaybe {
						discards[j-1] = keep
					}
				}
				continue
			}

			// minimum is one more than the approximate square root of length/4: 2 for runs
			// shorter than 16, 3 for runs shorter than 64, 5 for runs shorter than 256.
			minimum := 1
			for tem := (length / 4) >> 2; tem > 0; tem >>= 2 {
				minimum *= 2
			}
			minimum++

			// Keep every subrun of minimum or more discardMaybe elements.
			consec := 0
			for j := 0; j < length; j++ {
				if discards[i+j] != discardMaybe {
					consec = 0
					continue
				}
				consec++
				if consec == minimum {
					// Back up to the start of the subrun to cancel all of it.
					j -= consec
				} else if consec > minimum {
					discards[i+j] = keep
				}
			}

			// Scan from the start of the run until we find 3 or more discards in a row or until
			// the first discard at least 8 elements in. Keep all discardMaybe elements until then.
			consec = 0
			for j := 0; j < length; j++ {
				if j >= 8 && discards[i+j] == discard {
					break
				}
				switch discards[i+j] {
				case discardMaybe:
					consec = 0
					discards[i+j] = keep
				case keep:
					consec = 0
				default:
					consec++
				}
				if consec == 3 {
					break
				}
			}

			// Same from the end of the run.
			i += length - 1
			consec = 0
			for j := 0; j < length; j++ {
				if j >= 8 && discards[i-j] == discard {
					break
				}
				switch discards[i-j] {
				case discardMaybe:
					consec = 0
					discards[i-j] = keep
				case keep:
					consec = 0
				default:
					consec++
				}
				if consec == 3 {
					break
				}
			}
		}
	}
}
