// Quip - a cryptoquip (simple substitution cipher) solving tool.
// Copyright (C) 2016 Robert E. Beaty.
//
// This program is free software; you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation; either version 2 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License along
// with this program; if not, write to the Free Software Foundation, Inc.,
// 51 Franklin Street, Fifth Floor, Boston, MA 02110-1301 USA.
// Licensed under the LGPL v3.  See the LICENSE file for details

package quip

import (
	"fmt"
)

/*

Errors

*/

// An Error describes a problem with a cryptoquip or a requested
// operation on one.  It can produce an error message in English,
// but its main function is to support localized error messaging
// by clients.  It tells the client "this thing failed to meet
// this condition", and provides supplemental details about the
// thing and the condition.
//
// Rejection of a single candidate or search branch is never an
// Error; those are ordinary boolean results.  Errors are for
// malformed inputs and internal failures that stop a run.
type Error struct {
	Scope     ErrorScope     `json:"scope"`
	Structure ErrorStructure `json:"structure,omitempty"`
	Condition ErrorCondition `json:"condition,omitempty"`
	Attribute ErrorAttribute `json:"attribute,omitempty"`
	Values    ErrorData      `json:"values,omitempty"`
	Message   string         `json:"message,omitempty"` // custom message
}

// An ErrorScope explains what type of thing the error is
// referring to.  In the case of client errors, this is either a
// client-supplied argument or some aspect of the resulting
// cryptoquip.  In the case of internal logic errors, this is
// where in the code the failure occurred.
type ErrorScope int

// Constants for the various error scopes.
const (
	UnknownScope ErrorScope = iota
	RequestScope
	ArgumentScope
	CyphertextScope
	LegendScope
	SearchScope
	InternalScope
	MaxScope
)

// The ErrorStructure denotes whether the problem is in the
// overall Scope, an Attribute of the Scope, or the value of an
// Attribute of the Scope.
type ErrorStructure int

// Constants for the various structure codes.
const (
	UnknownStructure ErrorStructure = iota
	ScopeStructure
	AttributeStructure
	AttributeValueStructure
	MaxStructure
)

// The ErrorCondition is the predicate that the
// scope/attribute/value failed to satisfy.  There are a bunch of
// known, named predicates and then a "general" (arbitrary
// English string) predicate for runtime errors.
type ErrorCondition int

// Constants for the various error conditions
const (
	UnknownCondition ErrorCondition = iota
	GeneralCondition
	EmptyCondition
	IllegalCharacterCondition
	NoCypherwordsCondition
	NotALetterCondition
	HintConflictCondition
	PlainLetterClaimedCondition
	NoTimeCondition
	InvalidArgumentCondition
	MaxCondition
)

// An ErrorAttribute names the attribute that has a problem.
type ErrorAttribute int

// Constants for the various attribute codes.
const (
	UnknownAttribute ErrorAttribute = iota
	DecodeAttribute
	EncodeAttribute
	URLAttribute
	NamedAttribute
	CyphertextAttribute
	HintAttribute
	BudgetAttribute
	AttackAttribute
	WordSourceAttribute
	MaxAttribute
)

// The ErrorData provides details about the thing that failed to
// meet the predicate (such as the value of an attribute) as well
// as the predicate itself (such as the letters of a conflicting
// hint).
//
// Every item in the slice of ErrorData is required to be
// JSON-serializable, so it can be returned to web clients.
// Sadly, there is no good way to express this condition in a way
// the compiler can check it, so we just have to rely on
// implementors to "do the right thing" and check the condition
// at runtime.
type ErrorData []interface{}

// Return an error string from an Error.  If the Error has a
// pre-canned message, this will use it, otherwise it will
// produce an appropriate (English, non-localized) message.
func (e Error) Error() string {
	es := e.Message
	if len(es) > 0 {
		return es
	}
	values := e.Values
	nextVal := func() interface{} {
		if len(values) == 0 {
			return "<unknown>"
		}
		val := values[0]
		values = values[1:]
		return val
	}
	switch e.Scope {
	case RequestScope:
		es = "Invalid request: "
	case ArgumentScope:
		es = "Invalid argument: "
	case CyphertextScope:
		es = "Invalid cyphertext: "
	case LegendScope:
		es = fmt.Sprintf("Problem in legend %v: ", nextVal())
	case SearchScope:
		es = "Problem during search: "
	case InternalScope:
		es = "Internal logic error: "
	default:
		es = "Unknown error: "
	}
	if e.Structure == AttributeStructure || e.Structure == AttributeValueStructure {
		switch e.Attribute {
		case DecodeAttribute:
			es += "JSON Decode error"
		case EncodeAttribute:
			es += "JSON Encode error"
		case URLAttribute:
			es += "Resource path"
		case NamedAttribute:
			es += fmt.Sprint(nextVal())
		case CyphertextAttribute:
			es += "Cyphertext"
		case HintAttribute:
			es += "Hint"
		case BudgetAttribute:
			es += "Time budget"
		case AttackAttribute:
			es += "Attack"
		case WordSourceAttribute:
			es += "Word source"
		default:
			es += "<Unknown attribute>"
		}
		if e.Structure == AttributeValueStructure {
			es += " (" + fmt.Sprint(nextVal()) + ")"
		}
		es += ": "
	}
	switch e.Condition {
	case GeneralCondition:
		es += fmt.Sprint(nextVal())
	case EmptyCondition:
		es += "Required value was empty"
	case IllegalCharacterCondition:
		es += fmt.Sprintf("Contains a character (%v) other than letters, spaces, and simple punctuation", nextVal())
	case NoCypherwordsCondition:
		es += "No words were found in the cyphertext"
	case NotALetterCondition:
		es += fmt.Sprintf("Must map one lower-case letter to another, have %v", nextVal())
	case HintConflictCondition:
		es += fmt.Sprintf("Cipher letter %v is already mapped to %v", nextVal(), nextVal())
	case PlainLetterClaimedCondition:
		es += fmt.Sprintf("Plain letter %v is already claimed by cipher letter %v", nextVal(), nextVal())
	case NoTimeCondition:
		es += "No time to search: budget must be positive"
	case InvalidArgumentCondition:
		es += "Required value was missing or invalid"
	default:
		es += fmt.Sprintf("Supplemental data is %v", values)
	}
	return es
}
