// Copyright © 2021 Alibaba Group Holding Ltd.
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

package cell

import "fmt"

// MarkerType is the content tag stored in a Cell.
type MarkerType int

const (
	// MarkerNull marks an empty cell, it is the zero value.
	MarkerNull MarkerType = iota
	MarkerCircle
	MarkerCross
)

func (m MarkerType) String() string {
	switch m {
	case MarkerNull:
		return ""
	case MarkerCircle:
		return "o"
	case MarkerCross:
		return "x"
	default:
		return fmt.Sprintf("MarkerType(%d)", int(m))
	}
}

// Cell is one position on a grid and the marker it holds.
type Cell struct {
	Row int        `json:"row" yaml:"row"`
	Col int        `json:"col" yaml:"col"`
	Val MarkerType `json:"val" yaml:"val"`
}

// New returns a Cell at row 0, column 0 holding MarkerNull.
func New() Cell {
	return Cell{Row: 0, Col: 0, Val: MarkerNull}
}

// IsEmpty reports whether the cell holds MarkerNull.
func (c Cell) IsEmpty() bool {
	return c.Val == MarkerNull
}
