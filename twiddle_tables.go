package cfft

// cexpm1Table holds exp(2*pi*i/2^k) - 1 for k in [0, 16], tabulated to
// sub-ULP precision — transcribed from the original's dbcF_cexpm1 literal
// table (_examples/original_source/dbc_fft.h), which the distilled spec.md
// §4.3 only describes in prose ("tabulated literally to sub-ULP accuracy").
// Row k holds {real, imag}. float32 instantiations narrow these at use.
var cexpm1Table = [17][2]float64{
	{0.0, 0.0},
	{-2.0, 0.0},
	{-1.0, 1.0},
	{-2.928932188134524755991556378951509607151e-1, 7.071067811865475244008443621048490392848e-1},
	{-7.612046748871324387181681060321171317758e-2, 3.826834323650897717284599840303988667613e-1},
	{-1.921471959676955087381776386576096302606e-2, 1.950903220161282678482848684770222409276e-1},
	{-4.815273327803113755163046890520078424525e-3, 9.801714032956060199419556388864184586113e-2},
	{-1.204543794827607285228395240899305556796e-3, 4.906767432741801425495497694268265831474e-2},
	{-3.011813037957798842343503338278031499389e-4, 2.454122852291228803173452945928292506546e-2},
	{-7.529816085545907835350880361677564939353e-5, 1.227153828571992607940826195100321214037e-2},
	{-1.882471739885734300956227143228382608274e-5, 6.135884649154475359640234590372580917057e-3},
	{-4.706190423828488419874299880100447012366e-6, 3.067956762965976270145365490919842518944e-3},
	{-1.176548298090070974289828473980951732077e-6, 1.533980186284765612303697150264079079954e-3},
	{-2.941371177808397717822612343228837361006e-7, 7.669903187427045269385683579485766431409e-4},
	{-7.353428214885526851929261214305179884431e-8, 3.834951875713955890724616811813812633950e-4},
	{-1.838357070619165308459709028549492394875e-8, 1.917475973107033074399095619890009334688e-4},
	{-4.595892687109028066860393851041105696810e-9, 9.587379909597734587051721097647635118706e-5},
}

// taylorC1..taylorC8 are the odd (sin) and even (cos-1) Taylor coefficients used for
// k >= len(cexpm1Table), grounded on the same table in dbc_fft.h.
const (
	taylorC1 = 1.0
	taylorC2 = 5.0e-1
	taylorC3 = 1.666666666666666666666666666666666666666e-1
	taylorC4 = 4.166666666666666666666666666666666666666e-2
	taylorC5 = 8.333333333333333333333333333333333333333e-3
	taylorC6 = 1.388888888888888888888888888888888888888e-3
	taylorC7 = 1.984126984126984126984126984126984126984e-4
	taylorC8 = 2.480158730158730158730158730158730158730e-5

	twoPi = 6.283185307179586476925286766559005768
)
