// Package tables holds the reduction tables shared by the float and double
// kernels. A Pair stores a value as the unevaluated sum Hi + Lo, where Hi is
// the correctly rounded float64 and Lo the rounded remainder.
package tables

// Pair is a value carried to about 107 bits.
type Pair struct {
	Hi, Lo float64
}

// sin(n degrees), n = 0 to 90. cos(n degrees) is SinDeg[90-n].
var SinDeg = [...]Pair{
	{0.0, 0.0},
	{0.01745240643728351, 1.1662166393407661e-18},
	{0.03489949670250097, 2.4541105316805648e-18},
	{0.052335956242943835, -1.9154745404913664e-18},
	{0.0697564737441253, -1.6626312619596489e-18},
	{0.08715574274765818, -6.189574214131301e-18},
	{0.10452846326765347, 5.525270925166623e-19},
	{0.12186934340514748, 5.012490893619785e-18},
	{0.13917310096006544, 6.2647508793175504e-18},
	{0.15643446504023087, 5.047996510305999e-20},
	{0.17364817766693036, -1.0090493350843633e-17},
	{0.1908089953765448, 8.048584914381618e-18},
	{0.20791169081775934, -5.47375691962595e-18},
	{0.224951054343865, -5.375365318028275e-18},
	{0.24192189559966773, -7.487512331596258e-18},
	{0.25881904510252074, 2.287249500495561e-17},
	{0.27563735581699916, 2.2322874807804516e-17},
	{0.2923717047227367, 1.4253468517235273e-17},
	{0.30901699437494745, -2.716057601841253e-17},
	{0.32556815445715664, 2.4348241629568532e-17},
	{0.3420201433256687, 2.0136016534644645e-17},
	{0.35836794954530027, 5.129429438742477e-18},
	{0.374606593415912, 2.064878565700372e-17},
	{0.39073112848927377, -1.6213862367049614e-17},
	{0.4067366430758002, -5.150578879759637e-19},
	{0.42261826174069944, -5.0997719810332695e-18},
	{0.4383711467890774, 1.3614670412008845e-17},
	{0.4539904997395468, -1.2920330362313115e-17},
	{0.46947156278589075, 2.566828889823144e-17},
	{0.484809620246337, 2.6050929126402033e-17},
	{0.5, 0.0},
	{0.5150380749100542, 5.45508733014027e-17},
	{0.5299192642332049, 5.324207324764442e-17},
	{0.5446390350150271, -2.0392112176790234e-18},
	{0.5591929034707468, 3.6345645235466756e-17},
	{0.573576436351046, 4.770722835639321e-17},
	{0.5877852522924731, -7.93475083819002e-18},
	{0.6018150231520483, 1.2554920234397608e-17},
	{0.6156614753256583, -1.2033002503020567e-17},
	{0.6293203910498375, -4.928960949864041e-17},
	{0.6427876096865394, -3.659607900790949e-17},
	{0.6560590289905073, 8.946643112281473e-18},
	{0.6691306063588582, -2.3743801958426667e-17},
	{0.6819983600624985, 2.3911846463663322e-17},
	{0.6946583704589973, 3.255204553597346e-17},
	{0.7071067811865476, -4.833646656726457e-17},
	{0.7193398003386512, -5.25017092590559e-17},
	{0.7313537016191705, 2.3451970879795876e-17},
	{0.7431448254773942, -9.102893411544583e-18},
	{0.754709580222772, -1.6103499726442702e-17},
	{0.766044443118978, 2.1750711742081045e-17},
	{0.7771459614569709, -2.1812891210385366e-17},
	{0.7880107536067219, 5.351896361116795e-17},
	{0.7986355100472928, 1.7056328831010914e-17},
	{0.8090169943749475, -2.716057601841253e-17},
	{0.8191520442889918, -8.875118718918025e-18},
	{0.8290375725550417, -4.317201258535858e-17},
	{0.838670567945424, -2.0655877157166513e-17},
	{0.848048096156426, 1.3615301615173104e-17},
	{0.8571673007021123, -4.614499843016199e-17},
	{0.8660254037844386, 5.0175421109034514e-17},
	{0.8746197071393959, -5.1917675694728445e-17},
	{0.882947592858927, -4.638063298831139e-17},
	{0.8910065241883679, -3.644913950547234e-17},
	{0.898794046299167, -4.483464384731823e-17},
	{0.9063077870366499, 2.6568670490394046e-17},
	{0.9135454576426009, 2.890310230536196e-17},
	{0.9205048534524404, -4.7320119314441584e-17},
	{0.9271838545667874, -2.3483012356401238e-17},
	{0.9335804264972017, 5.99316437034661e-18},
	{0.9396926207859084, -4.3850932840020416e-17},
	{0.9455185755993168, -3.581049042769e-17},
	{0.9510565162951535, 4.0934500900087295e-17},
	{0.9563047559630354, 4.5832181177396514e-17},
	{0.9612616959383189, -3.2233645975023246e-17},
	{0.9659258262890683, -2.5463971562308955e-17},
	{0.9702957262759965, -6.362308874798482e-19},
	{0.9743700647852352, -1.734583625035923e-17},
	{0.9781476007338057, -5.0904377976839195e-17},
	{0.981627183447664, -2.2216266489407822e-17},
	{0.984807753012208, 3.905108875799298e-17},
	{0.9876883405951378, -4.4160180059897935e-17},
	{0.9902680687415704, -4.6895368077274677e-17},
	{0.992546151641322, 5.185220909860582e-17},
	{0.9945218953682733, 4.7061342505091844e-17},
	{0.9961946980917455, -1.2903694855897886e-17},
	{0.9975640502598242, 4.99603156474756e-17},
	{0.9986295347545738, 4.055160965126569e-17},
	{0.9993908270190958, -3.211194031663979e-17},
	{0.9998476951563913, -3.0420500034710914e-17},
	{1.0, 0.0},
}

// exp(n/128), n = -45 to 45, stored at index n+45.
var Exp = [...]Pair{
	{0.7035878743456275, 2.0931264376159458e-17},
	{0.7091061824373984, -1.2868055655346304e-17},
	{0.7146677711559482, 1.0718653305004493e-17},
	{0.7202729799554398, -3.7374088280484695e-17},
	{0.7259221509524082, 5.472585707681508e-17},
	{0.7316156289466418, 8.35576468031604e-18},
	{0.7373537614422269, 1.4920017233483322e-17},
	{0.7431368986687583, -9.001102395673582e-19},
	{0.7489653936027156, 3.355015530164773e-17},
	{0.7548396019890073, -9.844076038651084e-18},
	{0.7607598823626837, -3.515244854872631e-17},
	{0.76672659607082, 2.5682592802096574e-17},
	{0.7727401072945725, -4.6278282022506905e-17},
	{0.7788007830714049, -1.0231869534531498e-17},
	{0.7849089933174918, -5.313807232301296e-17},
	{0.791065110850296, 5.426586044764942e-17},
	{0.7972695114113244, 2.6020337682703143e-17},
	{0.8035225736890608, -3.661886830920417e-17},
	{0.8098246793420792, 5.0008114075382227e-17},
	{0.8161762130223398, 6.554697808700811e-18},
	{0.8225775623986646, -5.149396189997403e-17},
	{0.8290291181804004, -2.7604408719539223e-17},
	{0.835531274141265, 2.561592821517568e-17},
	{0.8420844271433824, -3.8967887440685524e-17},
	{0.8486889771615039, 2.2088650680117402e-17},
	{0.8553453273074225, 1.7204900005057594e-17},
	{0.8620538838545757, 5.763785158040174e-18},
	{0.8688150562628432, 6.146598011714697e-19},
	{0.8756292572035382, -2.1452399010158893e-17},
	{0.8824969025845955, -5.224526916735663e-17},
	{0.8894184115759556, 5.530240945009792e-17},
	{0.8963942066351505, -4.7460497709066285e-17},
	{0.9034247135330867, -2.0811956998712977e-17},
	{0.9105103613800342, -3.325048324577564e-17},
	{0.9176515826518158, 2.2920689673580445e-17},
	{0.9248488132162048, 1.0614261758612887e-17},
	{0.9321024923595276, -1.167464604196626e-18},
	{0.9394130628134758, -2.152447043447057e-17},
	{0.9467809707821289, 3.5480066918496995e-17},
	{0.9542066659691884, -3.392457164103672e-17},
	{0.9616906016054253, -3.5877873473605866e-18},
	{0.9692332344763441, -4.801151707083219e-17},
	{0.976835024950062, 8.59650273368323e-18},
	{0.9844964370054085, -4.7493026566356186e-17},
	{0.9922179382602435, -2.8192701381719798e-18},
	{1.0, 0.0},
	{1.007843097206448, -6.872774751042842e-17},
	{1.0157477085866857, 2.0530467874932267e-17},
	{1.023714316602358, 1.8124461803844703e-17},
	{1.0317434074991028, -8.944417741043132e-17},
	{1.03983547133623, -1.0991845821564372e-16},
	{1.0479910020166328, -5.327900898877614e-17},
	{1.056210497316932, 2.011958971782554e-17},
	{1.0644944589178593, 1.0872888143211957e-16},
	{1.0728433924348775, -2.976174935473522e-17},
	{1.0812578074490395, 6.013904942011385e-17},
	{1.0897382175380932, 4.0889548002981385e-17},
	{1.0982851403078258, 9.070644949793751e-17},
	{1.1068990974236574, 4.184587797682552e-17},
	{1.1155806146424807, 5.298211318168963e-17},
	{1.1243302218447506, 9.612226558381532e-17},
	{1.1331484530668263, -5.370737708558031e-18},
	{1.1420358465335656, -1.2069701773647767e-17},
	{1.1509929446911764, 3.7613173622701076e-17},
	{1.160020294240325, 1.0201936124800025e-16},
	{1.1691184461695043, 6.945488167320411e-17},
	{1.1782879557886632, 5.439076284168112e-17},
	{1.1875293827631006, 6.415816207759217e-19},
	{1.1968432911476248, -5.89991778046089e-18},
	{1.2062302494209807, 3.9295715071105525e-17},
	{1.2156908305205474, 6.879874701654399e-17},
	{1.2252256118773075, 8.279379001181868e-17},
	{1.234835175451091, 1.1071186581338978e-16},
	{1.2445201077660952, -7.440512295261056e-17},
	{1.2542809999466837, 1.3050032175111173e-17},
	{1.2641184477534664, -1.541497933603795e-17},
	{1.274033051619661, -3.187472928105996e-17},
	{1.2840254166877414, 8.968972781793724e-17},
	{1.2940961528463732, 6.099134468130705e-17},
	{1.3042458747676378, 1.7093578107981658e-17},
	{1.3144752019445491, -8.822975545119247e-18},
	{1.3247847587288655, 9.422682377542367e-17},
	{1.3351751743691969, -6.730265897120855e-17},
	{1.3456470830494105, 3.415854209639032e-17},
	{1.3562011239273402, 7.556508411024971e-17},
	{1.3668379411737963, 5.1449446596411544e-17},
	{1.3775581840118836, 1.0177365319881731e-16},
	{1.3883625067566268, 6.691963657219203e-17},
	{1.3992515688549068, 7.81643582994171e-17},
	{1.4102260349257107, -4.1758810273684196e-17},
	{1.4212865748006966, 1.106882170775812e-16},
}

// cbrt(1 + k/128), k = 0 to 127.
var Cbrt = [...]float64{
	1.0,
	1.0025974142646001,
	1.0051814396472645,
	1.0077522473643226,
	1.0103100051555476,
	1.0128548773804866,
	1.0153870251114199,
	1.01790660622309,
	1.020413775479337,
	1.0229086846167688,
	1.025391482425587,
	1.0278623148276862,
	1.0303213249521392,
	1.0327686532081688,
	1.0352044373557132,
	1.0376288125736755,
	1.040041911525952,
	1.0424438644253258,
	1.044834799095308,
	1.047214841030007,
	1.049584113452102,
	1.0519427373689911,
	1.0542908316271866,
	1.0566285129650201,
	1.0589558960637233,
	1.0612730935969434,
	1.0635802162787515,
	1.0658773729101998,
	1.0681646704244792,
	1.07044221393073,
	1.0727101067565519,
	1.0749684504892614,
	1.077217345015942,
	1.0794568885623264,
	1.0816871777305563,
	1.083908307535855,
	1.086120371442153,
	1.0883234613967014,
	1.0905176678637094,
	1.092703079857036,
	1.0948797849719722,
	1.097047869416141,
	1.0992074180395448,
	1.1013585143637923,
	1.103501240610526,
	1.105635677729083,
	1.1077619054234085,
	1.109880002178251,
	1.1119900452846578,
	1.1140921108647988,
	1.1161862738961343,
	1.1182726082349523,
	1.1203511866392912,
	1.1224220807912721,
	1.1244853613188537,
	1.1265410978170323,
	1.1285893588685003,
	1.1306302120637843,
	1.1326637240208732,
	1.1346899604043565,
	1.136708985944086,
	1.1387208644533735,
	1.1407256588467416,
	1.142723431157239,
	1.1447142425533319,
	1.1466981533553877,
	1.1486752230517598,
	1.1506455103144861,
	1.1526090730146117,
	1.1545659682371496,
	1.1565162522956856,
	1.1584599807466396,
	1.1603972084031948,
	1.1623279893489,
	1.164252376950959,
	1.1661704238732107,
	1.168082182088815,
	1.1699877028926446,
	1.1718870369133996,
	1.1737802341254437,
	1.1756673438603789,
	1.177548414818355,
	1.1794234950791334,
	1.1812926321128998,
	1.1831558727908422,
	1.1850132633954935,
	1.18686484963085,
	1.1887106766322688,
	1.1905507889761495,
	1.1923852306894098,
	1.1942140452587542,
	1.1960372756397482,
	1.197854964265696,
	1.199667153056333,
	1.2014738834263332,
	1.2032751962936385,
	1.205071132087615,
	1.2068617307570373,
	1.2086470317779099,
	1.210427074161126,
	1.21220189645997,
	1.2139715367774642,
	1.21573603277357,
	1.2174954216722398,
	1.2192497402683284,
	1.2209990249343643,
	1.222743311627187,
	1.2244826358944518,
	1.2262170328810043,
	1.22794653733513,
	1.229671183614682,
	1.231391005693087,
	1.2331060371652351,
	1.2348163112532542,
	1.2365218608121753,
	1.238222718335485,
	1.2399189159605752,
	1.241610485474086,
	1.2432974583171477,
	1.2449798655905249,
	1.2466577380596615,
	1.248331106159632,
	1.25,
	1.2516644493695859,
	1.2533244837411461,
	1.2549801322759666,
	1.2566314238283698,
	1.2582783869501413,
}

// cbrt(2^p), p = 0, 1, 2.
var CbrtTwo = [...]float64{
	1.0,
	1.2599210498948732,
	1.5874010519681996,
}

// asin(n/32), n = 0 to 16.
var Asin = [...]Pair{
	{0.0, 0.0},
	{0.031255088499495154, 7.976487478245782e-19},
	{0.06254076179649139, 3.797152289847936e-18},
	{0.09388787510751648, 1.5701227856771769e-18},
	{0.1253278311680654, 1.2906010488810617e-18},
	{0.1568928710204612, -3.7654033023674176e-18},
	{0.1886163861754041, -8.788406305681407e-18},
	{0.22053326092083333, -1.0170516942877372e-17},
	{0.25268025514207865, 6.584019697419058e-18},
	{0.2850964402527462, 2.275194115819904e-18},
	{0.31782370392788073, 2.3525133417051565e-17},
	{0.3509073435910811, 2.5161945155903493e-17},
	{0.3843967744956391, 1.0793527747925466e-18},
	{0.4183463864434681, 2.4916236820759997e-17},
	{0.4528165947449256, -1.0732687972848396e-17},
	{0.48787514754029293, -6.885708090978981e-18},
	{0.5235987755982989, -5.360408832255455e-17},
}

// sqrt(1 - (n/32)^2), n = 0 to 16.
var AsinSqrt = [...]Pair{
	{1.0, 0.0},
	{0.9995115994824673, -2.430393001488605e-17},
	{0.998044963916957, 3.79395877344626e-17},
	{0.9955957701296244, 3.252882074851433e-17},
	{0.9921567416492215, -4.712605530756651e-17},
	{0.9877175393299442, 5.071788622233699e-17},
	{0.982264602843857, -3.47069993032175e-17},
	{0.9757809372497497, 3.940126523730737e-17},
	{0.9682458365518543, -3.40525771686592e-17},
	{0.9596345332990055, -4.873523919547175e-17},
	{0.9499177595981665, -1.201973051108755e-17},
	{0.939061200082295, -3.3114373900859595e-17},
	{0.9270248108869579, -4.335160997268477e-18},
	{0.9137619698258403, 1.8485246992715915e-17},
	{0.899218410621135, -3.0755047020664014e-17},
	{0.8833308765689106, -1.2973889842038431e-17},
	{0.8660254037844386, 5.0175421109034514e-17},
}
