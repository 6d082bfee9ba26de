// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/creachadair/jlink"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// demoObject is the sample object tree printed and queried by "jlink demo".
var demoObject = map[string]any{
	"test": map[string]any{
		"path": []any{
			map[string]any{
				"to": []any{
					map[string]any{"object5": 1},
					[]any{0, 1, 2},
				},
				"in": []any{
					map[string]any{
						"arrays": []any{
							map[string]any{"test": 7, `""`: 42},
						},
					},
				},
			},
		},
		"inner": nil,
	},
}

// demoArray is the sample pure-array tree.
var demoArray = []any{
	[]any{
		[]any{0, 0, 0},
		[]any{1, 2, 3},
		[]any{0, 0, 0},
	},
	[]any{
		[]any{1, 0, 0},
		[]any{0, 1, 0},
		[]any{0, 0, 1},
	},
}

// A demoRule is one evaluation of the linkset: a source tree, a path, and
// the value the evaluation should produce (jlink.Nil for failures).
type demoRule struct {
	tree any
	path string
	want any
}

var demoRules = []demoRule{
	{demoObject, "test->path[0]->to[0]->object5", 1},
	{demoObject, "test->path[0]->to[0]->object5[7]", jlink.Nil},
	{demoObject, "test->path[0]->to[0]->object5[7][0]", jlink.Nil},
	{demoObject, "test->path[0]->to[0]->object5->abc", jlink.Nil},
	{demoObject, "test->path[0]->to[1][2]", 2},
	{demoObject, "test->inner", nil},
	{demoObject, "test['path']", demoObject["test"].(map[string]any)["path"]},
	{demoObject, "test[path]", jlink.Nil},
	{demoObject, "test->path[0]->in[0]->arrays[0]['test abc']", jlink.Nil},
	{demoObject, `test->path[0]->in[0]->arrays[0][""]`, jlink.Nil},
	{demoObject, "test->path[0]->in[0]->arrays[1]", jlink.Nil},
	{demoObject, "test->path[0]->in[0]->arrays[0]->test", 7},
	{demoObject, `['test']['path'][0]["to"][0]["object5"]`, 1},
	{demoObject, `['test']['path'][0]["to"][0]`, map[string]any{"object5": 1}},
	{demoObject, "['test']['path'][0]['to'][5]", jlink.Nil},
	{demoObject, "test->path[5]->in[0]->arrays[0]['test abc']", jlink.Nil},
	{demoArray, "[0][1][1]", 2},
	{demoArray, "0->1->1", 2},
	{demoArray, "0->1", []any{1, 2, 3}},
	{demoArray, "9", jlink.Nil},
}

var demoRulesSlash = []demoRule{
	{demoObject, "//test/path[0]/in[0]/arrays[0]", map[string]any{"test": 7, `""`: 42}},
	{demoObject, "//test/path[0]/in[0]/arrays[0]/test", 7},
	{demoObject, "//test/path[0]/to[0]", map[string]any{"object5": 1}},
}

func runDemo(cmd *cobra.Command, _ []string) error {
	enc, err := json.MarshalIndent(demoObject, "", "    ")
	if err != nil {
		return err
	}
	fmt.Println(string(enc))
	fmt.Println()

	okLabel := color.New(color.FgGreen).Sprint("OK")
	failLabel := color.New(color.FgRed).Sprint("FAIL")

	var passed, failed int
	check := func(rule demoRule, got any) {
		if reflect.DeepEqual(got, rule.want) {
			passed++
			fmt.Printf("[EVAL]  Rule : %-50s %s\n", rule.path, okLabel)
		} else {
			failed++
			fmt.Printf("[EVAL]  Rule : %-50s %s (value: %v, expected: %v)\n",
				rule.path, failLabel, got, rule.want)
		}
	}
	for _, rule := range demoRules {
		check(rule, jlink.Eval(rule.tree, rule.path, nil))
	}
	for _, rule := range demoRulesSlash {
		check(rule, jlink.EvalSlash(rule.tree, rule.path, nil))
	}

	fmt.Printf("\n[RESULT]    Passed : %d/%d\n", passed, passed+failed)
	fmt.Printf("[RESULT]    Fails  : %d/%d\n", failed, passed+failed)
	if failed > 0 {
		return fmt.Errorf("%d rules failed", failed)
	}
	return nil
}
