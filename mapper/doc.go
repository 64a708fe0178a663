// Package mapper is a minimal object mapper built around enum conversion.
//
// A Mapper holds type maps registered with CreateMap. Mapping copies the
// exported top-level members of a source struct into a destination struct,
// member by member:
//
//  1. a custom convert.ValueResolver registered with ForMember/ResolveUsing
//  2. otherwise the same-named source member, matched exactly and then
//     by normalized name ("OrderID" finds "OrderId")
//  3. enum members go through the convert.Resolver chain when either side
//     is a registered enum
//  4. other members are assigned, or converted when both sides are scalars
//
// Nested structs, slices and maps are copied by assignment only.
package mapper
