// Copyright 2025 Poiesic Systems
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


// Seeder writes a small sample triage knowledge base CSV, useful for local
// development and demos of the case-matching engine.
package main

import (
	"encoding/csv"
	"flag"
	"log/slog"
	"os"
)

var cases = [][]string{
	{"Strep throat", "sore throat, fever, pain when swallowing, swollen tonsils", "rest, warm fluids, salt water gargles; see a clinician for a throat swab", "https://medlineplus.gov/streptococcalinfections.html"},
	{"Common cold", "runny nose, sneezing, mild cough, low-grade fever", "rest and fluids; symptoms usually resolve within a week", "https://medlineplus.gov/commoncold.html"},
	{"Influenza", "sudden high fever, body aches, fatigue, dry cough", "rest, fluids, fever reducers; antivirals help if started early", "https://medlineplus.gov/flu.html"},
	{"Migraine", "throbbing one-sided headache, nausea, sensitivity to light", "rest in a dark quiet room; keep a trigger diary", "https://medlineplus.gov/migraine.html"},
	{"Tension headache", "dull band-like head pressure, neck stiffness", "stress management, hydration, over-the-counter pain relief", ""},
	{"Gastroenteritis", "nausea, vomiting, watery diarrhea, stomach cramps", "small sips of oral rehydration solution; bland food once settled", "https://medlineplus.gov/gastroenteritis.html"},
	{"Allergic rhinitis", "itchy eyes, sneezing, clear nasal discharge", "avoid triggers; antihistamines relieve symptoms", ""},
	{"Lower back strain", "aching lower back pain after lifting, muscle spasm", "keep gently active, heat packs; avoid prolonged bed rest", "https://medlineplus.gov/backpain.html"},
	{"Acid reflux", "burning chest discomfort after meals, sour taste", "smaller meals, avoid late eating; raise the head of the bed", ""},
	{"Sprained ankle", "ankle pain and swelling after twisting, bruising", "rest, ice, compression, elevation for the first two days", "https://medlineplus.gov/anklesinjuriesanddisorders.html"},
	{"Urinary tract infection", "burning on urination, frequent urges, cloudy urine", "drink plenty of water; see a clinician for testing and antibiotics", "https://medlineplus.gov/urinarytractinfections.html"},
	{"Conjunctivitis", "red itchy eye, discharge, crusted lashes in the morning", "warm compresses, good hand hygiene; avoid sharing towels", ""},
}

func main() {
	out := flag.String("out", "triage_kb.csv", "Path of the CSV to write")
	flag.Parse()

	f, err := os.Create(*out)
	if err != nil {
		slog.Error("cannot create output file", "path", *out, "err", err)
		os.Exit(1)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"condition", "symptoms", "advice", "url"}); err != nil {
		slog.Error("cannot write header", "err", err)
		os.Exit(1)
	}
	for _, row := range cases {
		if err := w.Write(row); err != nil {
			slog.Error("cannot write row", "err", err)
			os.Exit(1)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		slog.Error("cannot flush output", "err", err)
		os.Exit(1)
	}

	slog.Info("sample knowledge base written", "path", *out, "rows", len(cases))
}
