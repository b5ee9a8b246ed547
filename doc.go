// Package weighslide performs sliding window analysis of a list of
// numerical values, using flexible windows determined by the user.
//
// A window such as "494" or [2, 5, 2] defines both the neighborhood size
// and the per-position weights; positions marked "x" are excluded. For
// every input position the engine cuts the centred slice (boundaries
// padded with missing values), multiplies it element-wise by the weights
// and reduces the products to a single number with the chosen statistic
// (mean, std or sum). Missing values are excluded from the reduction,
// never counted as zero.
//
// The work is organized under three subpackages plus this root:
//
//	window/  — the core engine: Spec parsing, weight vectors, Slide
//	dataset/ — series loading from CSV/Excel, inline sequences, fixtures
//	report/  — output paths, staggered CSV tables, workbook, figure
//
// The root package ties them together: Run loads a dataset, slides the
// window across it and persists all artifacts (three CSVs, one workbook,
// one PNG) into a weighslide_output directory next to the input file.
// cmd/weighslide exposes the same flow on the command line.
//
// Typical periodicity use: the window "9xxxxx9xxxxx9" averages every
// sixth position, so repeats spaced six apart reinforce while unrelated
// positions drop out.
package weighslide
