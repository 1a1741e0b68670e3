/*
Package status tracks what happened to each file during a crlf run.

	+-------------+     +------------+     +-----------+
	| Unprocessed | --> | Dispatcher | --> |  Outcome  |
	+-------------+     +------------+     +-----------+
	                                         skipped
	                                         fixed
	                                         valid / invalid
	                                         ignored

🎯 Purpose:
- Records the terminal Outcome of every file a run touches
- Renders the end-of-run summary table

The Outcome of a file is terminal for the run. What carries over to the next
run lives in the index, not here.
*/
package status
