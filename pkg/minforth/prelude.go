// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

package minforth

// DefaultPrelude contains standard words defined in terms of the fixed
// vocabulary, loaded one line at a time unless WithNoPrelude is given.
const DefaultPrelude = `
: NEGATE 0 SWAP - ;
: NIP SWAP DROP ;
: SQUARE DUP * ;
: EVEN 2 MOD 0 = ;
: ODD 2 MOD ABS ;
: SIGN DUP 0 = IF DROP 0 ELSE DUP 0 < IF DROP -1 ELSE DROP 1 THEN THEN ;
`
