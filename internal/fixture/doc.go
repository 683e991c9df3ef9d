// Package fixture loads YAML descriptions of checkbox trees together with
// the selection results expected from them.
//
// # Schema
//
//	trees:
//	  basic:
//	    - key: A
//	      children:
//	        - key: B
//	          disabled: true
//	          children:
//	            - key: B1
//	        - key: C
//	scenarios:
//	  - name: leaf checks its parent
//	    tree: basic
//	    checked: [B1]
//	    extended: [B1]          # optional, expansion result
//	    status:                 # optional, aggregation result
//	      checked: [B1, B]
//	      indeterminate: [A]
//	    skip_vacuous: false     # optional, options.PolicySkipVacuous
//	    toggle:                 # optional, incremental helper
//	      uncheck: B1           # or check: <key>
//	      want: []
//
// Keys are strings. Result lists are compared without regard to order.
package fixture
