// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/discrex

package harness

// Built-in benchmark word lists: CSS properties taking unitless numbers, CSS
// properties taking pixel lengths, and two sets of random dictionary words.
var (
	numericProps = []string{
		"animation-iteration-count",
		"border-image-outset",
		"border-image-slice",
		"border-image-width",
		"column-count",
		"fill-opacity",
		"flex-grow",
		"flex-shrink",
		"flood-opacity",
		"font-weight",
		"line-height",
		"opacity",
		"order",
		"orphans",
		"shape-image-threshold",
		"stop-opacity",
		"stroke-miterlimit",
		"stroke-opacity",
		"tab-size",
		"widows",
		"z-index",
		"zoom",
	}

	pxProps = []string{
		"background-size",
		"baseline-shift",
		"border-bottom-left-radius",
		"border-bottom-right-radius",
		"border-bottom-width",
		"border-left-width",
		"border-right-width",
		"border-top-left-radius",
		"border-top-right-radius",
		"border-top-width",
		"bottom",
		"column-gap",
		"column-rule-width",
		"column-width",
		"cx",
		"cy",
		"flex-basis",
		"font-size",
		"grid-auto-columns",
		"grid-auto-rows",
		"height",
		"left",
		"letter-spacing",
		"margin-bottom",
		"margin-left",
		"margin-right",
		"margin-top",
		"max-height",
		"max-width",
		"min-height",
		"min-width",
		"offset-distance",
		"outline-offset",
		"outline-width",
		"padding-bottom",
		"padding-left",
		"padding-right",
		"padding-top",
		"perspective",
		"r",
		"right",
		"row-gap",
		"rx",
		"ry",
		"shape-margin",
		"stroke-dashoffset",
		"stroke-width",
		"text-indent",
		"top",
		"vertical-align",
		"width",
		"word-spacing",
		"x",
		"y",
	}

	random1 = []string{
		"connumeration-simplicial",
		"recognizors-oratorical",
		"sandhill",
		"glam",
		"eliads-labiality",
		"extensification",
		"hyperexcretion-acceptabilities",
		"echocardiography",
		"anchoring-disagreement",
		"rotunded-depicting",
		"medullas-malaroma",
		"miscolours",
		"unseen",
		"snitch",
		"chappatis-fastens",
		"chunkier-overmanaging",
		"costivenesses-nulliparae",
		"endocrinal",
		"teriyaki",
		"chamberpot",
		"pinakoidal-dacoities",
		"hyperplanes",
		"inhabitancies",
		"gardenfuls",
		"ingressive-eyewink",
	}

	random2 = []string{
		"humoresques",
		"algebraist",
		"achalasia",
		"off-meagernesses",
		"tallats-scaffs",
		"cooled",
		"dwiles-inessive",
		"smallholders-cheerfulness",
		"chott",
		"glitziness-jeanettes",
		"buccally-sandpipers",
		"teocallis-pisos",
		"disavouching",
		"versing-hatreds",
		"conductress-malentendu",
		"deaeration",
		"apportioned",
		"mailmerges",
		"sponge-weathercloth",
		"bashfully-skrimping",
		"bioluminescent-piecener",
		"dilative",
		"headachier",
		"unman-freecycling",
		"camorrista",
		"liturgy-invectives",
		"dewberries-catafalco",
		"pryse",
		"virtuosas",
		"democratize",
		"stomates",
		"clinics-tuboplasty",
		"intracardiac-isopycnal",
		"unwarrantable-teliospore",
		"interess-warrantable",
		"imbibitions",
		"copulated-shankpiece",
		"parkis",
		"maidservant",
		"tempestuousness-appartements",
	}
)

// BuiltinLists returns a fresh copy of the built-in benchmark word lists.
func BuiltinLists() *WordLists {
	lists := NewWordLists()
	_ = lists.Add("numericProps", numericProps)
	_ = lists.Add("pxProps", pxProps)
	_ = lists.Add("random1", random1)
	_ = lists.Add("random2", random2)

	return lists
}
