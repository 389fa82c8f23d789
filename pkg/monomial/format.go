// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package monomial

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/consensys/go-kpack/pkg/kpack"
	"github.com/consensys/go-kpack/pkg/symbol"
)

// Format renders a monomial against its reference symbol set, e.g.
// "x*y**2*z**3".  Zero exponents are omitted, as is an exponent of one; the
// unit monomial renders as "1".
func Format[T kpack.Exponent](p Packed[T], ss *symbol.Set) string {
	var parts []string
	//
	for i, e := range mustExponents(p, ss.Len()) {
		switch {
		case e == 0:
			continue
		case e == 1:
			parts = append(parts, ss.Nth(uint(i)))
		default:
			parts = append(parts, fmt.Sprintf("%s**%v", ss.Nth(uint(i)), e))
		}
	}
	//
	if len(parts) == 0 {
		return "1"
	}
	//
	return strings.Join(parts, "*")
}

// TeX renders a monomial against its reference symbol set in TeX syntax.
// Symbols with positive exponents form the numerator and symbols with
// negative exponents the denominator of a fraction.  Exponents pass through
// arbitrary precision integers so that negating the most negative value of T
// while printing cannot overflow.
func TeX[T kpack.Exponent](p Packed[T], ss *symbol.Set) string {
	var num, den strings.Builder
	//
	for i, e := range mustExponents(p, ss.Len()) {
		if e == 0 {
			continue
		}
		//
		exp := kpack.ToBig(e)
		//
		if exp.Sign() > 0 {
			texFactor(&num, ss.Nth(uint(i)), exp)
		} else {
			texFactor(&den, ss.Nth(uint(i)), exp.Neg(exp))
		}
	}
	//
	switch {
	case den.Len() == 0 && num.Len() == 0:
		return "1"
	case den.Len() == 0:
		return num.String()
	case num.Len() == 0:
		return fmt.Sprintf("\\frac{1}{%s}", den.String())
	default:
		return fmt.Sprintf("\\frac{%s}{%s}", num.String(), den.String())
	}
}

// Append one symbol-exponent factor to a (numerator or denominator) builder.
// At this point the exponent is always positive.
func texFactor(builder *strings.Builder, name string, exp *big.Int) {
	if exp.Cmp(big.NewInt(1)) == 0 {
		builder.WriteString(name)
		return
	}
	//
	fmt.Fprintf(builder, "{%s}^{%s}", name, exp.String())
}
