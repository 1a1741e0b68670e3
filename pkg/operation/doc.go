/*
Package operation applies fix or validate to every eligible file under a root.

🎯 Purpose:
- Decides per file whether work is needed, using the index
- Rewrites files toward the target line ending (fix)
- Reports files that do not follow it (validate)

🔄 Flow:

	Run(root)
	   │  lock + load index
	   ▼
	walk.Walker ──► Process(path)
	                   │
	                   ├─ ineligible ............ ignored, success
	                   ├─ index fresh ........... skipped, success
	                   ├─ fix ................... read → convert → write → upsert
	                   └─ validate .............. read → check → diagnostic? → upsert
	   │
	   ▼  save index (only when the walk did not error), unlock

⚡ Outcomes:
- A validation failure is a false result, never an error
- I/O problems are errors and stop the walk; the index is then not saved
- Fix rewrites the file even when the content did not change

🤝 Collaborators:
- config: extension allow-list and excluded folders
- index: per-file timestamp and conformance
- encoding: reading and writing text
- text: line-ending conversion and detection
- status, log: outcome tracking and console output
*/
package operation
