package narrow

import "github.com/signadot/docshape/shape"

// Select projects every variant of u onto the named fields, as a select
// clause does to the rows it returns.  Fields a variant does not declare
// are projected as any when the shape cannot rule them out (open schema)
// and omitted when it can.  Sub-collections do not survive projection:
// the result describes plain field records.
func Select(u shape.Union, fields ...string) shape.Union {
	var res shape.Union
	for _, d := range u {
		proj := &shape.Document{Fields: map[string]*shape.Value{}}
		for _, f := range fields {
			v, st := lookupField(d, f)
			switch st {
			case lookupFound:
				proj.Fields[f] = v
			case lookupUnknown:
				proj.Fields[f] = shape.Any()
			case lookupAbsent:
			}
		}
		res = res.Add(proj)
	}
	return res
}
